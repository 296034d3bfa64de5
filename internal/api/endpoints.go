package api

import "fmt"

// Endpoint paths are the contract with the Gurtar backend.
const (
	EndpointLogin   = "/auth/login"
	EndpointLogout  = "/auth/logout"
	EndpointRefresh = "/auth/refresh"

	EndpointUsers      = "/admin/users"
	EndpointBusinesses = "/admin/businesses"
	EndpointLogs       = "/admin/logs"

	EndpointCategories = "/categories"

	EndpointContacts      = "/contact/admin"
	EndpointContactCreate = "/contact"

	EndpointDashboardStats  = "/dashboard/stats"
	EndpointDashboardExport = "/dashboard/stats/export"
)

func userBanPath(id string) string            { return fmt.Sprintf("%s/%s/ban", EndpointUsers, id) }
func businessVerifyPath(id string) string     { return fmt.Sprintf("%s/%s/verify", EndpointBusinesses, id) }
func businessToggleStatusPath(id string) string {
	return fmt.Sprintf("%s/%s/toggle-status", EndpointBusinesses, id)
}
func businessOrdersPath(id string) string { return fmt.Sprintf("%s/%s/orders", EndpointBusinesses, id) }
func categoryPath(id string) string       { return fmt.Sprintf("%s/%s", EndpointCategories, id) }
func subcategoriesPath(id string) string {
	return fmt.Sprintf("%s/%s/subcategories", EndpointCategories, id)
}
func contactResolvePath(id string) string { return fmt.Sprintf("%s/%s/resolve", EndpointContacts, id) }
