package api

import (
	"net/url"
	"strconv"
)

// Meta is the pagination envelope returned by every list endpoint.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListResponse is the generic {data, meta} envelope.
type ListResponse[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// SortOrder matches the backend's expected casing.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// AuthResponse is the token pair issued by login and refresh.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PlatformUser is a marketplace account as returned by the admin users
// endpoints.
type PlatformUser struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	DeletedAt       *string `json:"deleted_at"`
	Email           string  `json:"email"`
	GoogleID        *string `json:"google_id"`
	FullName        string  `json:"full_name"`
	PhoneNumber     string  `json:"phone_number"`
	ProfileImageURL string  `json:"profile_image_url"`
	Birthday        *string `json:"birthday"`
	Gender          *string `json:"gender"`
	Role            string  `json:"role"`
	IsPremium       bool    `json:"is_premium"`
	IsBanned        bool    `json:"is_banned"`
	EcoScore        float64 `json:"eco_score"`
	EcoLevel        string  `json:"eco_level"`
	TotalCO2Saved   float64 `json:"total_co2_saved"`
	TotalMoneySaved float64 `json:"total_money_saved"`
	TotalOrders     int     `json:"total_orders"`
}

// UsersFilters selects and orders the admin users listing.
type UsersFilters struct {
	Page     int
	Limit    int
	Role     string
	IsBanned *bool
	Search   string
	Sort     string
	Order    SortOrder
}

func (f UsersFilters) query() url.Values {
	q := url.Values{}
	addInt(q, "page", f.Page)
	addInt(q, "limit", f.Limit)
	addString(q, "role", f.Role)
	addBool(q, "is_banned", f.IsBanned)
	addString(q, "search", f.Search)
	addString(q, "sort", f.Sort)
	addString(q, "order", string(f.Order))
	return q
}

// Business is a marketplace business as returned by the admin endpoints.
type Business struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	PhoneNumber   string        `json:"phone_number"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Country       string        `json:"country"`
	PostalCode    string        `json:"postal_code"`
	CategoryID    string        `json:"category_id"`
	LogoURL       string        `json:"logo_url"`
	CoverImageURL string        `json:"cover_image_url"`
	Website       string        `json:"website,omitempty"`
	IsVerified    bool          `json:"is_verified"`
	IsActive      bool          `json:"is_active"`
	Owner         *PlatformUser `json:"owner"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// BusinessesFilters selects and orders the admin businesses listing.
type BusinessesFilters struct {
	Page       int
	Limit      int
	IsVerified *bool
	IsActive   *bool
	City       string
	Search     string
	Sort       string
	Order      SortOrder
}

func (f BusinessesFilters) query() url.Values {
	q := url.Values{}
	addInt(q, "page", f.Page)
	addInt(q, "limit", f.Limit)
	addBool(q, "is_verified", f.IsVerified)
	addBool(q, "is_active", f.IsActive)
	addString(q, "city", f.City)
	addString(q, "search", f.Search)
	addString(q, "sort", f.Sort)
	addString(q, "order", string(f.Order))
	return q
}

// OrderStatus is the lifecycle state of a marketplace order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderCancelled OrderStatus = "cancelled"
)

// BusinessOrder is one order placed against a business.
type BusinessOrder struct {
	ID         string        `json:"id"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
	DeletedAt  *string       `json:"deletedAt"`
	Quantity   int           `json:"quantity"`
	TotalPrice string        `json:"total_price"`
	MoneySaved string        `json:"money_saved"`
	CO2SavedKg string        `json:"co2_saved_kg"`
	Status     OrderStatus   `json:"status"`
	User       *PlatformUser `json:"user"`
}

// BusinessOrdersFilters selects and orders a business's order listing.
type BusinessOrdersFilters struct {
	Page   int
	Limit  int
	Status OrderStatus
	Sort   string
	Order  SortOrder
}

func (f BusinessOrdersFilters) query() url.Values {
	q := url.Values{}
	addInt(q, "page", f.Page)
	addInt(q, "limit", f.Limit)
	addString(q, "status", string(f.Status))
	addString(q, "sort", f.Sort)
	addString(q, "order", string(f.Order))
	return q
}

// Category is a marketplace category, optionally with nested subcategories.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ParentID      *string    `json:"parent_id"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
	DeletedAt     *string    `json:"deletedAt"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

// CategoriesFilters selects and orders the categories listing.
type CategoriesFilters struct {
	Page                 int
	Limit                int
	Search               string
	ParentID             string
	Sort                 string
	Order                SortOrder
	IncludeSubcategories bool
}

func (f CategoriesFilters) query() url.Values {
	q := url.Values{}
	addInt(q, "page", f.Page)
	addInt(q, "limit", f.Limit)
	addString(q, "search", f.Search)
	addString(q, "parent_id", f.ParentID)
	addString(q, "sort", f.Sort)
	addString(q, "order", string(f.Order))
	if f.IncludeSubcategories {
		q.Set("include_subcategories", "true")
	}
	return q
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id,omitempty"`
}

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
	DeletedAt  *string `json:"deletedAt"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Subject    string  `json:"subject"`
	Message    string  `json:"message"`
	IsResolved bool    `json:"is_resolved"`
}

// ContactsFilters selects and orders the contact messages listing.
type ContactsFilters struct {
	Page       int
	Limit      int
	IsResolved *bool
	Search     string
	Sort       string
	Order      SortOrder
}

func (f ContactsFilters) query() url.Values {
	q := url.Values{}
	addInt(q, "page", f.Page)
	addInt(q, "limit", f.Limit)
	addBool(q, "is_resolved", f.IsResolved)
	addString(q, "search", f.Search)
	addString(q, "sort", f.Sort)
	addString(q, "order", string(f.Order))
	return q
}

// CreateContactInput is the payload for the public contact endpoint.
type CreateContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// AdminLog records one administrative action.
type AdminLog struct {
	ID          string        `json:"id"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
	DeletedAt   *string       `json:"deletedAt"`
	Admin       *PlatformUser `json:"admin"`
	ActionType  string        `json:"action_type"`
	TargetType  string        `json:"target_type"`
	TargetID    string        `json:"target_id"`
	Description string        `json:"description"`
}

// LogsFilters selects and orders the admin log listing.
type LogsFilters struct {
	Page       int
	Limit      int
	ActionType string
	TargetType string
	Search     string
	Sort       string
	Order      SortOrder
}

func (f LogsFilters) query() url.Values {
	q := url.Values{}
	addInt(q, "page", f.Page)
	addInt(q, "limit", f.Limit)
	addString(q, "action_type", f.ActionType)
	addString(q, "target_type", f.TargetType)
	addString(q, "search", f.Search)
	addString(q, "sort", f.Sort)
	addString(q, "order", string(f.Order))
	return q
}

func addInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func addString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func addBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}
