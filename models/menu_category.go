package models

type MenuCategory struct {
	CategoryID  uint    `gorm:"primaryKey" json:"category_id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

type NewMenuCategory struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type MenuCategoryItem struct {
	CategoryID uint          `gorm:"primaryKey;autoIncrement:false" json:"category_id"`
	ItemID     uint          `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Category   *MenuCategory `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Item       *MenuItem     `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
