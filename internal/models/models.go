package models

import (
	"time"
)

// Роли и статусы пользователя
const (
	RoleReader = "READER"
	RoleWriter = "WRITER"
	RoleAdmin  = "ADMIN"

	UserStatusActive  = "ACTIVE"
	UserStatusBanned  = "BANNED"
	UserStatusDeleted = "DELETED"
)

// Действия администратора над пользователем
const (
	UserActionBan    = "BAN"
	UserActionUnban  = "UNBAN"
	UserActionDelete = "DELETE"
)

// Статусы новости
const (
	PostStatusPending  = "PENDING"
	PostStatusApproved = "APPROVED"
	PostStatusRejected = "REJECTED"
	PostStatusDeleted  = "DELETED"
)

// Статусы рекламы
const (
	AdStatusPending  = "PENDING"
	AdStatusApproved = "APPROVED"
	AdStatusRejected = "REJECTED"
)

// Статусы заявки на роль писателя (испанские метки, как в продукте)
const (
	SolicitudPendiente = "PENDIENTE"
	SolicitudAprobada  = "APROBADA"
	SolicitudRechazada = "RECHAZADA"
)

type User struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	Status       string     `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt" db:"last_login_at"`
}

type Post struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	AuthorID     string    `json:"authorId" db:"author_id"`
	AuthorName   string    `json:"authorName" db:"author_name"`
	Category     string    `json:"category" db:"category"`
	ImageURL     *string   `json:"imageUrl" db:"image_url"`
	Feedback     *string   `json:"feedback" db:"feedback"`
	DeleteReason *string   `json:"deleteReason" db:"delete_reason"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	UserName  string    `json:"userName" db:"user_name"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Advertisement struct {
	ID              string     `json:"id" db:"id"`
	Brand           string     `json:"brand" db:"brand"`
	UserID          string     `json:"userId" db:"user_id"`
	UserName        string     `json:"userName" db:"user_name"`
	Description     string     `json:"description" db:"description"`
	DurationDays    int        `json:"durationDays" db:"duration_days"`
	Paid            bool       `json:"paid" db:"paid"`
	StartDate       *time.Time `json:"startDate" db:"start_date"`
	EndDate         *time.Time `json:"endDate" db:"end_date"`
	Status          string     `json:"status" db:"status"`
	RejectionReason *string    `json:"rejectionReason" db:"rejection_reason"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Solicitud - заявка пользователя на получение роли WRITER
type Solicitud struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"userId" db:"user_id"`
	UserName       string    `json:"userName" db:"user_name"`
	UserEmail      string    `json:"userEmail" db:"user_email"`
	Motivo         string    `json:"motivo" db:"motivo"`
	Estado         string    `json:"estado" db:"estado"`
	FechaSolicitud time.Time `json:"fechaSolicitud" db:"fecha_solicitud"`
}

// Stats - количество документов в каждой коллекции
type Stats struct {
	Users          int `json:"users" db:"users"`
	Posts          int `json:"posts" db:"posts"`
	Comments       int `json:"comments" db:"comments"`
	Advertisements int `json:"advertisements" db:"advertisements"`
	Solicitudes    int `json:"solicitudes" db:"solicitudes"`
}
