package api

import (
	"net/http"

	"log/slog"

	"github.com/vertiport/evtolhub/pkg/repository"
	"github.com/vertiport/evtolhub/web"
)

type JobsHandler struct {
	jobs     repository.JobRepo
	renderer *web.Renderer
}

func NewJobsHandler(jobs repository.JobRepo, renderer *web.Renderer) *JobsHandler {
	return &JobsHandler{jobs: jobs, renderer: renderer}
}

// ListPage renders every job, newest first. No pagination or filtering.
func (h *JobsHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ListJobs(r.Context())
	if err != nil {
		logger.Error("list jobs", slog.Any("err", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderHTML(w, h.renderer, "jobs.html", map[string]any{
		"User": CurrentUser(r.Context()),
		"Jobs": jobs,
	})
}

func (h *JobsHandler) PostPage(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	renderHTML(w, h.renderer, "post_job.html", map[string]any{"User": user})
}

// PostJob stores a posting from the submitted form. All fields are taken
// as-is; empty strings are acceptable everywhere since the form always
// submits a value for the NOT NULL columns.
func (h *JobsHandler) PostJob(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	job := jobFromForm(r)
	job.UserID = &user.ID
	if _, err := h.jobs.CreateJob(r.Context(), &job); err != nil {
		logger.Error("create job", slog.Any("err", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/jobs", http.StatusSeeOther)
}
