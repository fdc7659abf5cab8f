package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredentialsMissing is returned when a username or password is blank.
var ErrCredentialsMissing = errors.New("username and password are required")

// User 定义了后台管理员账号，密码以 bcrypt 哈希存储。
// 密码按原样哈希，不去除首尾空格。
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureUser 存在性检查：若提供的用户名与密码均非空且不存在对应账号，则创建一个 bcrypt 哈希的用户。
// 已存在的账号保持不变。
func EnsureUser(gdb *gorm.DB, username, password string) (bool, error) {
	trimmedUser := strings.TrimSpace(username)
	if trimmedUser == "" || strings.TrimSpace(password) == "" {
		return false, nil
	}
	if gdb == nil {
		return false, errors.New("database not initialized")
	}

	var existing User
	err := gdb.Where("username = ?", trimmedUser).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	if err := gdb.Create(&User{Username: trimmedUser, Password: string(hashed)}).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SetPassword creates the account or replaces its password hash.
func SetPassword(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	if trimmedUser == "" || strings.TrimSpace(password) == "" {
		return ErrCredentialsMissing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var user User
	err = gdb.Where("username = ?", trimmedUser).First(&user).Error
	switch {
	case err == nil:
		return gdb.Model(&user).Update("password", string(hashed)).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return gdb.Create(&User{Username: trimmedUser, Password: string(hashed)}).Error
	default:
		return err
	}
}
