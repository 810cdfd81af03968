package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher 密码哈希器
// 封装 bcrypt：加盐、单向、计算代价由配置决定
type Hasher struct {
	cost int
}

// NewHasher 创建 Hasher
// cost 超出 bcrypt 合法范围时回退为 DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash 生成密码哈希
// 盐值每次随机：同一明文两次哈希结果不同，但均可通过 Verify
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify 校验明文与存储哈希是否匹配
// 存储哈希格式非法时返回 false，不返回错误
func (h *Hasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
