package repository

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
}

type Student struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null"`
	Age   int    `gorm:"not null"`
	Grade string `gorm:"size:10;not null"`
}
