package domain

import "time"

// Role представляет роль пользователя
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// Profile содержит общие данные любого пользователя
type Profile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// User представляет пользователя витрины. Вариант определяется полем Role:
// у клиента есть баллы лояльности, у администратора - журнал действий.
type User struct {
	Profile
	Role          Role      `json:"role"`
	LoyaltyPoints int64     `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewClient создает клиента
func NewClient(profile Profile) *User {
	return &User{Profile: profile, Role: RoleClient, CreatedAt: time.Now()}
}

// NewAdmin создает администратора
func NewAdmin(profile Profile) *User {
	return &User{Profile: profile, Role: RoleAdmin, CreatedAt: time.Now()}
}

func (u *User) IsClient() bool { return u.Role == RoleClient }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u *User) Register(sink Sink) {
	emitf(sink, "%s registered.", u.Name)
}

func (u *User) Login(sink Sink) {
	emitf(sink, "%s logged in.", u.Name)
}

// UpdateData заменяет контактные данные, идентификатор не меняется
func (u *User) UpdateData(profile Profile, sink Sink) {
	profile.ID = u.ID
	u.Profile = profile
	emitf(sink, "User data updated.")
}

// AddLoyaltyPoints начисляет баллы клиенту.
// Знак не проверяется: это задача Guard.
func (u *User) AddLoyaltyPoints(points int64) error {
	if !u.IsClient() {
		return ErrNotClient
	}
	u.LoyaltyPoints += points
	return nil
}

// LogAction пишет действие администратора в журнал
func (u *User) LogAction(action string, sink Sink) error {
	if !u.IsAdmin() {
		return ErrNotAdmin
	}
	emitf(sink, "Admin log: %s", action)
	return nil
}
