package models

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	CreateTime   string `json:"createTime"`
}

// Preferences is the server-side analogue of the client's persisted keys.
// Zero values are the defaults: light mode and no remembered user.
type Preferences struct {
	DarkMode       string `json:"darkMode"` // "true" or "false"
	RememberedUser string `json:"rememberedUser"`
}
