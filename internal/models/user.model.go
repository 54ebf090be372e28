package models

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User links an identity-provider account (UID) to a dashboard role. Accounts
// are provisioned out of band; this service only reads the role to authorize
// staff and admin routes.
type User struct {
	BaseUUIDModel
	UID  string `gorm:"type:varchar(128);not null;uniqueIndex" json:"uid"`
	Role string `gorm:"type:varchar(32);not null"              json:"role"`
}
