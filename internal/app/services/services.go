// Services defined in this package:
// - AuthService: registration, login and token lifecycle
// - ItemService: item reporting and the claim/found workflow
// - DashboardService: landing, dashboard and report summaries
// - DepartmentService: department lookups and administration
package services
