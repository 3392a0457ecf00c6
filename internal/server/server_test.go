package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/intel"
	"github.com/jonathan/skill-intel/internal/observability"
	"github.com/jonathan/skill-intel/internal/server/ratelimit"
	"github.com/jonathan/skill-intel/internal/types"
)

func catalogue() []db.Skill {
	return []db.Skill{
		{Name: "Python", Domain: "Data Science", Category: db.CategoryTechnical, CurrentDemandScore: 90, FutureDemandScore: 95, TrendStatus: types.TrendHighGrowth},
		{Name: "SQL", Domain: "Data Science", Category: db.CategoryTechnical, CurrentDemandScore: 85, FutureDemandScore: 80, TrendStatus: types.TrendSaturated},
		{Name: "TensorFlow", Domain: "Data Science", Category: db.CategoryTechnical, CurrentDemandScore: 60, FutureDemandScore: 88, TrendStatus: types.TrendEmerging},
		{Name: "Docker", Domain: "DevOps", Category: db.CategoryTechnical, CurrentDemandScore: 70, FutureDemandScore: 85, TrendStatus: types.TrendHighGrowth},
		{Name: "Kubernetes", Domain: "DevOps", Category: db.CategoryTechnical, CurrentDemandScore: 65, FutureDemandScore: 90, TrendStatus: types.TrendEmerging},
	}
}

func newTestServer(t *testing.T, store *fakeStore, opts ...Option) *Server {
	t.Helper()
	s := New(Config{RateLimit: &ratelimit.Config{Enabled: false}}, store, intel.NewService(nil), opts...)
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, s *Server, path string, fields map[string]string, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, newFakeStore())
	w := do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "healthy", decode[map[string]string](t, w)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, newFakeStore(), WithMetrics(observability.NewMetrics()))
	do(t, s, http.MethodGet, "/health", nil)

	w := do(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "skill_intel_http_request_duration_seconds")
	assert.Contains(t, w.Body.String(), `route="/health"`)
}

func TestMetricsEndpoint_AbsentWithoutMetrics(t *testing.T) {
	s := newTestServer(t, newFakeStore())
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/metrics", nil).Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, newFakeStore())

	req := httptest.NewRequest(http.MethodOptions, "/api/roadmaps/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/roadmaps/generate", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := New(Config{RateLimit: &ratelimit.Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour}},
		newFakeStore(), nil)
	t.Cleanup(s.Close)

	first := do(t, s, http.MethodGet, "/api/roadmaps", nil)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := do(t, s, http.MethodGet, "/api/roadmaps", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode[map[string]any](t, second)["error"])

	// Health is never throttled
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", nil).Code)
}

func TestUploadResume_JSON(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPost, "/api/skills/upload-resume", types.ProfileRequest{
		ResumeText: "Senior Python developer, ships with Docker.",
		Domain:     "Data Science",
		TargetRole: "Data Scientist",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[map[string]any](t, w)
	assert.Equal(t, []any{"Python", "Docker"}, resp["current_skills"])
	assert.Equal(t, "fallback", resp["source"])
	assert.Equal(t, "Data Scientist", resp["target_role"])

	stored := store.profiles[db.DefaultOwner]
	require.NotNil(t, stored)
	assert.Equal(t, "Data Science", stored.Domain)
}

func TestUploadResume_MultipartFile(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)

	w := doMultipart(t, s, "/api/skills/upload-resume",
		map[string]string{"domain": "DevOps", "target_role": "SRE"},
		"resume.txt", "Kubernetes\r\nLinux and Git")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored := store.profiles[db.DefaultOwner]
	require.NotNil(t, stored)
	assert.Equal(t, []string{"Kubernetes", "Linux", "Git"}, stored.CurrentSkills)
	assert.Equal(t, "Kubernetes\nLinux and Git", stored.ResumeText)
	assert.Equal(t, "SRE", stored.TargetRole)
}

func TestUploadResume_HTMLFile(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)

	w := doMultipart(t, s, "/api/skills/upload-resume", nil,
		"resume.html", "<html><body><ul><li>React</li><li>CSS</li></ul><script>Rust()</script></body></html>")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"React", "CSS"}, store.profiles[db.DefaultOwner].CurrentSkills)
}

func TestUploadResume_Errors(t *testing.T) {
	s := newTestServer(t, newFakeStore())

	tests := []struct {
		name   string
		send   func() *httptest.ResponseRecorder
		status int
	}{
		{
			name:   "malformed JSON",
			send:   func() *httptest.ResponseRecorder { return do(t, s, http.MethodPost, "/api/skills/upload-resume", "{") },
			status: http.StatusBadRequest,
		},
		{
			name: "missing resume text",
			send: func() *httptest.ResponseRecorder {
				return do(t, s, http.MethodPost, "/api/skills/upload-resume", map[string]string{"domain": "x"})
			},
			status: http.StatusBadRequest,
		},
		{
			name: "bad experience level",
			send: func() *httptest.ResponseRecorder {
				return do(t, s, http.MethodPost, "/api/skills/upload-resume", types.ProfileRequest{ResumeText: "Go", ExperienceLevel: "guru"})
			},
			status: http.StatusBadRequest,
		},
		{
			name: "pdf upload",
			send: func() *httptest.ResponseRecorder {
				return doMultipart(t, s, "/api/skills/upload-resume", nil, "resume.pdf", "%PDF-1.4")
			},
			status: http.StatusUnsupportedMediaType,
		},
		{
			name: "empty multipart",
			send: func() *httptest.ResponseRecorder {
				return doMultipart(t, s, "/api/skills/upload-resume", map[string]string{"domain": "x"}, "", "")
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.send()
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestUploadResume_StoreFailureIsOpaque(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused at 10.0.0.5")
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPost, "/api/skills/upload-resume", types.ProfileRequest{ResumeText: "Go"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", decode[map[string]string](t, w)["error"])
}

func TestAnalyzeGaps_NoProfile(t *testing.T) {
	s := newTestServer(t, newFakeStore(catalogue()...))
	w := do(t, s, http.MethodPost, "/api/skills/analyze-gaps", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func seedProfile(t *testing.T, store *fakeStore, domain, role string, skills ...string) *db.Profile {
	t.Helper()
	p, err := store.UpsertProfile(t.Context(), db.ProfileInput{
		Owner: db.DefaultOwner, Domain: domain, TargetRole: role, CurrentSkills: skills,
	})
	require.NoError(t, err)
	return p
}

func TestAnalyzeGaps_DomainCatalogue(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)
	profile := seedProfile(t, store, "Data Science", "Data Scientist", "python")

	w := do(t, s, http.MethodPost, "/api/skills/analyze-gaps", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[gapAnalysisResponse](t, w)
	assert.Equal(t, profile.ID, resp.ProfileID)
	assert.Equal(t, 0.33, resp.OverallGapScore)
	assert.Equal(t, []string{"SQL", "TensorFlow"}, resp.MissingSkills)
	assert.Equal(t, []string{"SQL"}, resp.PriorityShortTerm)
	assert.Equal(t, []string{"TensorFlow"}, resp.PriorityLongTerm)
	assert.Equal(t, types.SourceFallback, resp.Source)
	assert.Contains(t, resp.Recommendations, "Data Scientist")

	require.Len(t, resp.SkillGaps, 2)
	assert.Equal(t, "SQL", resp.SkillGaps[0].SkillName)
	assert.Equal(t, db.PriorityHigh, resp.SkillGaps[0].Priority)
	assert.Equal(t, db.TimeframeShortTerm, resp.SkillGaps[0].Timeframe)
	assert.Equal(t, 1.0, resp.SkillGaps[0].GapScore)
	assert.Equal(t, 85.0, resp.SkillGaps[0].CurrentDemandScore)
	assert.Equal(t, db.PriorityMedium, resp.SkillGaps[1].Priority)
	assert.Equal(t, db.TimeframeLongTerm, resp.SkillGaps[1].Timeframe)

	assert.Len(t, store.gaps[profile.ID], 2)
}

func TestAnalyzeGaps_TrendingFallback(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)
	seedProfile(t, store, "Marketing", "", "Docker")

	w := do(t, s, http.MethodPost, "/api/skills/analyze-gaps", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[gapAnalysisResponse](t, w)
	// Emerging and high-growth skills by future demand, Docker already held
	assert.Equal(t, []string{"Python", "Kubernetes", "TensorFlow"}, resp.MissingSkills)
	assert.Contains(t, resp.Recommendations, "Professional")
}

func TestAnalyzeGaps_EmptyCatalogue(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)
	profile := seedProfile(t, store, "", "", "Go")

	w := do(t, s, http.MethodPost, "/api/skills/analyze-gaps", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[string]any](t, w)
	assert.Equal(t, profile.ID.String(), resp["profile_id"])
	assert.Equal(t, 0.0, resp["overall_gap_score"])
	assert.Equal(t, []any{}, resp["skill_gaps"])
	assert.Equal(t, []any{}, resp["priority_skills_short_term"])
}

func TestTrendingSkills(t *testing.T) {
	s := newTestServer(t, newFakeStore(catalogue()...))

	w := do(t, s, http.MethodGet, "/api/skills/trending?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	skills := decode[[]db.Skill](t, w)
	require.Len(t, skills, 2)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, "Kubernetes", skills[1].Name)

	w = do(t, s, http.MethodGet, "/api/skills/trending?domain=DevOps", nil)
	assert.Len(t, decode[[]db.Skill](t, w), 2)
}

func TestSkillForecast(t *testing.T) {
	skills := catalogue()
	f1y := 92.5
	skills[3].Forecast1Y = &f1y
	s := newTestServer(t, newFakeStore(skills...))

	w := do(t, s, http.MethodGet, "/api/skills/forecast/Docker", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[skillForecastResponse](t, w)
	assert.Equal(t, "Docker", resp.Skill)
	assert.Equal(t, types.TrendHighGrowth, resp.TrendStatus)
	require.NotNil(t, resp.Forecast1Y)
	assert.Equal(t, 92.5, *resp.Forecast1Y)
	assert.Nil(t, resp.Forecast6M)
	assert.InDelta(t, (85.0-70.0)/70.0*100, resp.GrowthRate, 1e-9)
	require.Len(t, resp.TrendData, 12)
	assert.Equal(t, 70.0, resp.TrendData[0].Value)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/skills/forecast/COBOL", nil).Code)
}

func TestClassifyAndForecast(t *testing.T) {
	s := newTestServer(t, newFakeStore())

	w := do(t, s, http.MethodPost, "/api/skills/classify", types.TrendMeasurement{AverageInterest: 40, GrowthRate: 45})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emerging", decode[map[string]string](t, w)["trend_status"])

	w = do(t, s, http.MethodPost, "/api/skills/classify", types.TrendMeasurement{AverageInterest: 140})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/api/skills/forecast", types.ForecastRequest{CurrentDemand: 50, GrowthRate: 100})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[demandForecastResponse](t, w)
	assert.Equal(t, types.ForecastTriple{Forecast6M: 75, Forecast1Y: 100, Forecast3Y: 100}, resp.ForecastTriple)
	assert.Equal(t, types.TrendHighGrowth, resp.TrendStatus)
}

func TestRoadmaps(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)
	seedProfile(t, store, "", "", "Python")

	w := do(t, s, http.MethodPost, "/api/roadmaps/generate", types.RoadmapRequest{TargetRole: "Data Scientist", TimelineMonths: 6})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[db.Roadmap](t, w)
	assert.Equal(t, "Roadmap to become Data Scientist", created.Title)
	assert.Equal(t, 6, created.TargetTimelineMonths)
	assert.Equal(t, types.SourceFallback, created.Plan.Source)
	require.NotEmpty(t, created.Plan.Steps)
	for _, step := range created.Plan.Steps {
		assert.NotEqual(t, "Python", step.Skill, "held skills are not planned")
	}

	w = do(t, s, http.MethodGet, "/api/roadmaps", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]db.Roadmap](t, w), 1)

	w = do(t, s, http.MethodGet, "/api/roadmaps/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[db.Roadmap](t, w).ID)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/roadmaps/"+uuid.NewString(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/roadmaps/42", nil).Code)
}

func TestGenerateRoadmap_Validation(t *testing.T) {
	s := newTestServer(t, newFakeStore())

	w := do(t, s, http.MethodPost, "/api/roadmaps/generate", map[string]any{"target_role": "SRE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/api/roadmaps/generate", map[string]any{"target_role": "SRE", "target_timeline_months": 500})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurriculum_Lifecycle(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPost, "/api/curriculum/upload", types.CurriculumUploadRequest{
		Name: "BSc Data", Program: "Undergraduate", Text: "Python and SQL basics",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[db.Curriculum](t, w)
	assert.Equal(t, []string{"Python", "SQL"}, created.ExtractedSkills)
	assert.Equal(t, 0.67, created.AlignmentScore)
	require.NotNil(t, created.Recommendations)
	assert.Equal(t, []string{"Docker", "Kubernetes", "TensorFlow"}, created.Recommendations.SkillsToAdd)

	w = do(t, s, http.MethodGet, "/api/curriculum", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]db.Curriculum](t, w), 1)

	w = do(t, s, http.MethodGet, "/api/curriculum/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The catalogue moves on; re-analysis picks it up
	store.skills = append(store.skills, db.Skill{ID: uuid.New(), Name: "SQL Tuning", TrendStatus: types.TrendSaturated, FutureDemandScore: 10})
	w = do(t, s, http.MethodPost, "/api/curriculum/"+created.ID.String()+"/analyze", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]any](t, w)
	assert.Equal(t, 0.5, resp["alignment_score"])

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/api/curriculum/"+uuid.NewString()+"/analyze", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/curriculum/"+uuid.NewString(), nil).Code)
}

func TestUploadCurriculum_Multipart(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)

	w := doMultipart(t, s, "/api/curriculum/upload", map[string]string{"name": "DevOps Track"}, "syllabus.md", "# Week 1\n- Docker\n- Kubernetes")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"Docker", "Kubernetes"}, decode[db.Curriculum](t, w).ExtractedSkills)

	w = doMultipart(t, s, "/api/curriculum/upload", map[string]string{"name": "Inline", "curriculum_text": "Rust"}, "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doMultipart(t, s, "/api/curriculum/upload", map[string]string{"name": "Empty"}, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "curriculum_text")

	w = doMultipart(t, s, "/api/curriculum/upload", map[string]string{"curriculum_text": "Rust"}, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSkillHeatmap(t *testing.T) {
	s := newTestServer(t, newFakeStore(catalogue()...))

	w := do(t, s, http.MethodGet, "/api/analytics/skill-heatmap?domain=DevOps", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[string][]heatmapEntry](t, w)
	require.Len(t, resp["skills"], 2)
	assert.Equal(t, heatmapEntry{
		Skill: "Docker", Domain: "DevOps", CurrentDemand: 70, FutureDemand: 85,
		TrendStatus: types.TrendHighGrowth, Category: db.CategoryTechnical,
	}, resp["skills"][0])
}

func TestTrendGrowth(t *testing.T) {
	s := newTestServer(t, newFakeStore(catalogue()...))

	w := do(t, s, http.MethodGet, "/api/analytics/trend-growth?skill_names=SQL,%20Unknown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string][]trendGrowthEntry](t, w)
	require.Len(t, resp["trends"], 1)
	assert.Equal(t, "SQL", resp["trends"][0].Skill)
	assert.Equal(t, -5.88, resp["trends"][0].GrowthRate)
	assert.Equal(t, types.TrendSaturated, resp["trends"][0].Classification)
	assert.Len(t, resp["trends"][0].TrendData, 12)

	w = do(t, s, http.MethodGet, "/api/analytics/trend-growth", nil)
	resp = decode[map[string][]trendGrowthEntry](t, w)
	assert.Len(t, resp["trends"], 4)
}

func TestEmployabilityReadiness(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)

	w := do(t, s, http.MethodGet, "/api/analytics/employability-readiness", nil)
	assert.Equal(t, "Please upload a resume first", decode[map[string]any](t, w)["message"])

	seedProfile(t, store, "Data Science", "Data Scientist", "Python")
	w = do(t, s, http.MethodGet, "/api/analytics/employability-readiness", nil)
	assert.Equal(t, "Please run skill gap analysis first", decode[map[string]any](t, w)["message"])

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/skills/analyze-gaps", nil).Code)
	w = do(t, s, http.MethodGet, "/api/analytics/employability-readiness", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[employabilityResponse](t, w)
	assert.Equal(t, 0.0, resp.ReadinessScore)
	assert.Equal(t, 33.33, resp.DomainCoverage)
	assert.Equal(t, 3, resp.TotalSkillsRequired)
	assert.Equal(t, 1, resp.SkillsCovered)
	assert.Equal(t, 1, resp.PriorityGaps)
}

func TestInstitutionReadiness(t *testing.T) {
	store := newFakeStore(catalogue()...)
	s := newTestServer(t, store)

	w := do(t, s, http.MethodGet, "/api/analytics/institution-readiness", nil)
	empty := decode[institutionResponse](t, w)
	assert.Equal(t, 0, empty.TotalCurricula)
	assert.Equal(t, "Please upload curricula first", empty.Message)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/curriculum/upload",
		types.CurriculumUploadRequest{Name: "BSc Data", Text: "Python and SQL basics"}).Code)

	w = do(t, s, http.MethodGet, "/api/analytics/institution-readiness", nil)
	resp := decode[institutionResponse](t, w)
	assert.Equal(t, 1, resp.TotalCurricula)
	assert.InDelta(t, 60, resp.PlacementReadiness, 0.01)
	assert.InDelta(t, 57, resp.IndustryCollaboration, 0.01)
	assert.InDelta(t, 77, resp.Accreditation, 0.01)
}
