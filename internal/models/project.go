package models

type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Owner      string `json:"owner"`
	Admin      string `json:"admin"`
	CreateTime string `json:"createTime"`
}
