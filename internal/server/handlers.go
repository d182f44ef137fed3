package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ---------------------------------------------------------------------
// Job Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Description == "" && req.DescriptionURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either description or description_url is required")
		return
	}
	if req.Description != "" && req.DescriptionURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "description and description_url are mutually exclusive")
		return
	}

	description := req.Description
	if req.DescriptionURL != "" {
		text, err := fetch.JobDescription(r.Context(), req.DescriptionURL, nil)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
			return
		}
		description = text
	}
	description = textnorm.Normalize(description)

	skills := types.NewSkillSet(req.Skills...)
	if len(skills) == 0 {
		skills = s.deriveJobSkills(r, description)
	}
	if len(skills) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No skills supplied and none could be derived from the description")
		return
	}

	job := &types.JobProfile{
		Title:          req.Title,
		RawText:        description,
		RequiredSkills: skills,
		Location:       req.Location,
	}

	id, err := s.store.CreateJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// deriveJobSkills extracts required skills from a description, preferring the
// AI parser and falling back to the dictionary matcher.
func (s *Server) deriveJobSkills(r *http.Request, description string) types.SkillSet {
	if s.llmClient != nil {
		parsed, err := parsing.ParseJD(r.Context(), s.llmClient, description)
		if err == nil && len(parsed.MustHaveSkills) > 0 {
			return types.NewSkillSet(parsed.MustHaveSkills...)
		}
	}
	return s.engine.ExtractSkills(description)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filters := db.JobFilters{
		Title:    r.URL.Query().Get("title"),
		Location: r.URL.Query().Get("location"),
		Limit:    parseIntParam(r, "limit"),
	}

	jobs, err := s.store.ListJobs(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []db.JobRow{}
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.store.DeleteJob(r.Context(), jobID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------
// Resume Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text := textnorm.Normalize(req.Text)
	resume := &types.CandidateProfile{
		ApplicantName:   req.ApplicantName,
		RawText:         text,
		ExtractedSkills: s.engine.ExtractSkills(text),
		ExperienceLevel: req.ExperienceLevel,
	}

	id, err := s.store.CreateResume(r.Context(), resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":               id.String(),
		"extracted_skills": resume.ExtractedSkills,
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.ListResumes(r.Context(), parseIntParam(r, "limit"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resumes == nil {
		resumes = []db.ResumeRow{}
	}

	s.jsonResponse(w, http.StatusOK, resumes)
}

// ---------------------------------------------------------------------
// Evaluation Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	jobID, err := uuid.Parse(r.URL.Query().Get("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing or invalid job_id query parameter")
		return
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	eval, err := s.engine.Evaluate(r.Context(), job.ToProfile(), resume.ToProfile())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Evaluation failed: "+err.Error())
		return
	}

	if err := s.store.SaveEvaluation(r.Context(), eval); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, eval)
}

func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	evalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid evaluation ID")
		return
	}

	eval, err := s.store.GetEvaluation(r.Context(), evalID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if eval == nil {
		s.errorResponse(w, http.StatusNotFound, "Evaluation not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, eval)
}

func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	filters := db.EvaluationFilters{
		Verdict: r.URL.Query().Get("verdict"),
		Limit:   parseIntParam(r, "limit"),
	}

	if raw := r.URL.Query().Get("job_id"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid job_id")
			return
		}
		filters.JobID = jobID
	}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid min_score")
			return
		}
		filters.MinScore = minScore
	}

	evals, err := s.store.ListEvaluations(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if evals == nil {
		evals = []db.EvaluationRow{}
	}

	s.jsonResponse(w, http.StatusOK, evals)
}

// ---------------------------------------------------------------------
// JD Parsing Handler
// ---------------------------------------------------------------------

func (s *Server) handleParseJD(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "JD parsing requires an API key")
		return
	}

	var req types.ParseJDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed, err := parsing.ParseJD(r.Context(), s.llmClient, req.JDText)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "JD parsing failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}

func parseIntParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
