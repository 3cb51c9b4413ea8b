package types

import (
	"errors"

	"github.com/google/uuid"
)

// uuidRequired 校验 UUID 字段非零值（ ozzo 的 Required 对数组类型不可靠）
func uuidRequired(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a non-zero UUID")
	}
	return nil
}
