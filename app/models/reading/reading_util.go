package reading

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"arcana/pkg/tarot"
)

// Cards 三张已确定位置与正逆位的牌，以 JSON 存储
type Cards []tarot.DrawnCard

// Value 实现 driver.Valuer 接口
func (c Cards) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (c *Cards) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*c = Cards{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("invalid type for cards: %T", value)
	}
	return json.Unmarshal(data, c)
}

// Validate 验证记录
func (r *Reading) Validate() error {
	hasUser := r.UserID != nil && *r.UserID != ""
	hasSession := r.SessionID != nil && *r.SessionID != ""
	if hasUser == hasSession {
		return errors.New("exactly one of user_id and session_id must be set")
	}
	if len(r.Cards) != tarot.SelectionSize {
		return fmt.Errorf("reading must contain exactly %d cards", tarot.SelectionSize)
	}
	return nil
}

// IsPublic 匿名记录，持有 id 即可访问
func (r *Reading) IsPublic() bool {
	return r.UserID == nil
}

// OwnedBy 是否属于指定用户
func (r *Reading) OwnedBy(userID string) bool {
	return r.UserID != nil && userID != "" && *r.UserID == userID
}
