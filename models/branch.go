package models

// Branch is a physical café location. Rows are seeded by migration.
type Branch struct {
	BranchID uint   `gorm:"primaryKey" json:"branch_id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
}

func (Branch) TableName() string {
	return "cafe_branches"
}
