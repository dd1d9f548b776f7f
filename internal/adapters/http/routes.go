package web

import "net/http"

// registerRoutes wires every API route. The registration endpoint is public;
// everything under the admin panel requires a reviewer or admin session,
// enforced inside the handlers.
func registerRoutes(mux *http.ServeMux) {
	// Public
	mux.HandleFunc("POST /api/register", handleRegister)
	mux.HandleFunc("POST /api/login", handleLogin)
	mux.HandleFunc("POST /api/logout", handleLogout)
	mux.HandleFunc("GET /api/roles", handleRoles)

	// Admin panel: applications
	mux.HandleFunc("GET /api/candidates", handleListCandidates)
	mux.HandleFunc("GET /api/candidates/{id}", handleCandidateDetail)
	mux.HandleFunc("POST /api/candidates/{id}/approve", handleApproveCandidate)
	mux.HandleFunc("POST /api/candidates/{id}/reject", handleRejectCandidate)

	// Admin panel: members
	mux.HandleFunc("GET /api/members", handleMembers)
	mux.HandleFunc("POST /api/members/{id}/team", handleAssignTeam)

	// Admin panel: reporting
	mux.HandleFunc("GET /api/statistics", handleStatistics)
	mux.HandleFunc("GET /api/export/members.csv", handleExportMembers)
	mux.HandleFunc("GET /api/export/candidates.csv", handleExportCandidates)
}
