package user

import "strings"

// User 读者实体
// ContactDetails全局唯一,作为读者的业务标识
type User struct {
	ID               uint
	Name             string
	ContactDetails   string
	BorrowingHistory string
	Preferences      string
}

// NewUser 创建读者
func NewUser(name, contactDetails string) *User {
	return &User{
		Name:           strings.TrimSpace(name),
		ContactDetails: strings.TrimSpace(contactDetails),
	}
}

// Rename 修改姓名和联系方式
func (u *User) Rename(name, contactDetails string) {
	u.Name = strings.TrimSpace(name)
	u.ContactDetails = strings.TrimSpace(contactDetails)
}
