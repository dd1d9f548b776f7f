package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"clubreg/internal/adapters/http/middleware"
	"clubreg/internal/application/orchestrators"
	"clubreg/internal/application/projections"
	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/export"
	"clubreg/internal/domain/role"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts user-submitted markdown to sanitized HTML for the
// admin detail view.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_response_failed", "error", err)
	}
}

// respondError writes a JSON error payload in the panel's envelope shape.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]any{"success": false, "error": msg})
}

// requireReviewer blocks requests without a reviewer or admin session.
// POST: Returns true when the request may proceed
func requireReviewer(w http.ResponseWriter, r *http.Request) bool {
	if !middleware.IsReviewerOrAdmin(r.Context()) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// actorName resolves the reviewer name recorded in audit lines.
func actorName(r *http.Request) string {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		return sess.Email
	}
	return candidate.DefaultActor
}

// pathID parses the {id} path segment as a candidate/member id.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// --- Public endpoints ---

func handleRoles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"roles": role.Catalog})
}

func handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      string `json:"fullName"`
		Email         string `json:"email"`
		RoleID        int    `json:"roleId"`
		ReasonToApply string `json:"reasonToApply"`
	}
	if err := strictDecode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteRegisterCandidate(r.Context(), orchestrators.RegisterCandidateInput{
		FullName:      req.FullName,
		Email:         req.Email,
		RoleID:        req.RoleID,
		ReasonToApply: req.ReasonToApply,
	}, orchestrators.RegisterCandidateDeps{CandidateStore: stores.CandidateStore})
	if err != nil {
		switch err {
		case candidate.ErrEmptyFullName, candidate.ErrFullNameTooShort, candidate.ErrFullNameTooLong,
			candidate.ErrInvalidEmail, candidate.ErrInvalidRole,
			candidate.ErrReasonTooShort, candidate.ErrReasonTooLong:
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			internalError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "candidate": result.Candidate})
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, orchestrators.LoginDeps{AccountStore: stores.AccountStore})
	switch err {
	case nil:
	case orchestrators.ErrAccountLocked:
		respondError(w, http.StatusLocked, err.Error())
		return
	default:
		respondError(w, http.StatusUnauthorized, orchestrators.ErrInvalidCredentials.Error())
		return
	}

	token, err := sessions.Create(result.Account.ID, result.Account.Email, result.Account.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "role": result.Account.Role})
}

func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.SessionCookie(r); ok {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- Applications ---

func handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}

	query := projections.GetCandidateListQuery{
		Search: r.URL.Query().Get("search"),
		Status: candidate.Status(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("role"); raw != "" && raw != "ALL" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "role must be a role id or ALL")
			return
		}
		query.RoleID = id
	}

	result, err := projections.QueryGetCandidateList(r.Context(), query,
		projections.GetCandidateListDeps{CandidateStore: stores.CandidateStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"candidates": result.Candidates, "total": len(result.Candidates)})
}

func handleCandidateDetail(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	all, err := stores.CandidateStore.Load(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	for _, c := range all {
		if c.ID == id {
			respondJSON(w, http.StatusOK, map[string]any{
				"candidate":  c,
				"reasonHtml": renderMarkdown(c.ReasonToApply),
				"noteHtml":   renderMarkdown(c.Note),
			})
			return
		}
	}
	respondError(w, http.StatusNotFound, "candidate not found")
}

func handleApproveCandidate(w http.ResponseWriter, r *http.Request) {
	handleDecision(w, r, candidate.StatusApproved)
}

func handleRejectCandidate(w http.ResponseWriter, r *http.Request) {
	handleDecision(w, r, candidate.StatusRejected)
}

func handleDecision(w http.ResponseWriter, r *http.Request, decision candidate.Status) {
	if !requireReviewer(w, r) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if r.ContentLength > 0 {
		if err := strictDecode(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	// The rejection form requires a reason; approval does not.
	if decision == candidate.StatusRejected && req.Note == "" {
		respondError(w, http.StatusBadRequest, "a reason for rejection is required")
		return
	}

	result, err := orchestrators.ExecuteReviewCandidate(r.Context(), orchestrators.ReviewCandidateInput{
		CandidateID: id,
		Decision:    decision,
		Note:        req.Note,
		Actor:       actorName(r),
	}, orchestrators.ReviewCandidateDeps{
		CandidateStore: stores.CandidateStore,
		EmailSender:    emailSender,
		EmailFrom:      emailFromAddress,
		EmailReplyTo:   emailReplyTo,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	// A missing id still reports success; the collection was written back
	// unchanged.
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "found": result.Found, "candidate": result.Candidate})
}

// --- Members ---

func handleMembers(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}
	result, err := projections.QueryGetMemberList(r.Context(), projections.GetMemberListDeps{
		CandidateStore: stores.CandidateStore,
		MemberStore:    stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"members": result.Members, "total": len(result.Members)})
}

func handleAssignTeam(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req struct {
		Team string `json:"team"`
	}
	if err := strictDecode(r, &req); err != nil || req.Team == "" {
		respondError(w, http.StatusBadRequest, "team is required")
		return
	}

	if err := orchestrators.ExecuteAssignTeam(r.Context(), orchestrators.AssignTeamInput{
		MemberID: id,
		Team:     req.Team,
	}, orchestrators.AssignTeamDeps{MemberStore: stores.MemberStore}); err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- Reporting ---

func handleStatistics(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}
	result, err := projections.QueryGetStatistics(r.Context(), projections.GetStatisticsDeps{
		CandidateStore: stores.CandidateStore,
		MemberStore:    stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result.Report)
}

func handleExportMembers(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}
	sheet, err := projections.QueryExportMembers(r.Context(), projections.GetMemberListDeps{
		CandidateStore: stores.CandidateStore,
		MemberStore:    stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeCSVDownload(w, "members.csv", sheet)
}

func handleExportCandidates(w http.ResponseWriter, r *http.Request) {
	if !requireReviewer(w, r) {
		return
	}
	sheet, err := projections.QueryExportCandidates(r.Context(), projections.GetCandidateListDeps{
		CandidateStore: stores.CandidateStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeCSVDownload(w, "candidates.csv", sheet)
}

func writeCSVDownload(w http.ResponseWriter, filename string, sheet projections.ExportResult) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, sheet.Headers, sheet.Rows); err != nil {
		slog.Error("csv_export_failed", "file", filename, "error", err)
	}
}
