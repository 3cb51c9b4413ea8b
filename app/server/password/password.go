package password

import (
	"classifieds-board/app/server/errs"
	"crypto/sha256"
	"encoding/hex"
)

// Hash 计算密码的 SHA-256 摘要（小写十六进制，固定 64 字符）。
// 同样的输入永远产生同样的输出，空字符串也是合法输入。
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyCredential 重新计算摘要并与存储的摘要逐字节比较
func VerifyCredential(storedHash string, attempt string) error {
	if Hash(attempt) != storedHash {
		return errs.ErrInvalidCredentials
	}
	return nil
}

// Compare 校验两次输入的密码是否一致（注册、改密时的确认输入）
func Compare(a string, b string) error {
	if a != b {
		return errs.ErrPasswordMismatch
	}
	return nil
}
