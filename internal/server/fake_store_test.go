package server

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/types"
)

// fakeStore is an in-memory Store
type fakeStore struct {
	mu        sync.Mutex
	skills    []db.Skill
	profiles  map[string]*db.Profile
	gaps      map[uuid.UUID][]db.SkillGapInput
	roadmaps  []db.Roadmap
	curricula []db.Curriculum
	err       error // returned by every method when set
}

func newFakeStore(skills ...db.Skill) *fakeStore {
	for i := range skills {
		if skills[i].ID == uuid.Nil {
			skills[i].ID = uuid.New()
		}
	}
	return &fakeStore{
		skills:   skills,
		profiles: map[string]*db.Profile{},
		gaps:     map[uuid.UUID][]db.SkillGapInput{},
	}
}

func (f *fakeStore) Ping(context.Context) error { return f.err }

func (f *fakeStore) ListSkills(_ context.Context, filters db.SkillFilters) ([]db.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []db.Skill{}
	for _, s := range f.skills {
		if filters.Domain != "" && s.Domain != filters.Domain {
			continue
		}
		if len(filters.TrendStatuses) > 0 && !slices.Contains(filters.TrendStatuses, s.TrendStatus) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FutureDemandScore != out[j].FutureDemandScore {
			return out[i].FutureDemandScore > out[j].FutureDemandScore
		}
		return out[i].Name < out[j].Name
	})
	limit := filters.Limit
	if limit <= 0 {
		limit = db.DefaultSkillLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) ListAllSkills(_ context.Context, domain string) ([]db.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []db.Skill{}
	for _, s := range f.skills {
		if domain == "" || s.Domain == domain {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) GetSkillByName(_ context.Context, name string) (*db.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.skills {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetProfile(_ context.Context, owner string) (*db.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[owner], nil
}

func (f *fakeStore) UpsertProfile(_ context.Context, input db.ProfileInput) (*db.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[input.Owner]
	if !ok {
		p = &db.Profile{ID: uuid.New(), Owner: input.Owner, CreatedAt: time.Now()}
		f.profiles[input.Owner] = p
	}
	p.ResumeText = input.ResumeText
	p.Domain = input.Domain
	p.TargetRole = input.TargetRole
	p.ExperienceLevel = input.ExperienceLevel
	p.CurrentSkills = types.DedupeSkills(input.CurrentSkills)
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (f *fakeStore) ReplaceSkillGaps(_ context.Context, profileID uuid.UUID, gaps []db.SkillGapInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.gaps[profileID] = gaps
	return nil
}

func (f *fakeStore) ListSkillGaps(_ context.Context, profileID uuid.UUID) ([]db.SkillGap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []db.SkillGap{}
	for _, g := range f.gaps[profileID] {
		gap := db.SkillGap{SkillID: g.SkillID, GapScore: g.GapScore, Priority: g.Priority, Timeframe: g.Timeframe}
		for _, s := range f.skills {
			if s.ID == g.SkillID {
				gap.SkillName = s.Name
			}
		}
		out = append(out, gap)
	}
	return out, nil
}

func (f *fakeStore) CreateRoadmap(_ context.Context, input db.RoadmapInput) (*db.Roadmap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	title := input.Plan.Title
	if strings.TrimSpace(title) == "" {
		title = "Roadmap to " + input.TargetRole
	}
	rm := db.Roadmap{
		ID:                   uuid.New(),
		Owner:                input.Owner,
		Title:                title,
		TargetRole:           input.TargetRole,
		TargetTimelineMonths: input.TargetTimelineMonths,
		Plan:                 input.Plan,
		GeneratedAt:          time.Now(),
	}
	f.roadmaps = append(f.roadmaps, rm)
	return &rm, nil
}

func (f *fakeStore) ListRoadmaps(_ context.Context, owner string) ([]db.Roadmap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []db.Roadmap{}
	for _, rm := range f.roadmaps {
		if rm.Owner == owner {
			out = append(out, rm)
		}
	}
	return out, nil
}

func (f *fakeStore) GetRoadmap(_ context.Context, owner string, id uuid.UUID) (*db.Roadmap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, rm := range f.roadmaps {
		if rm.ID == id && rm.Owner == owner {
			return &rm, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateCurriculum(_ context.Context, input db.CurriculumInput) (*db.Curriculum, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c := db.Curriculum{
		ID:              uuid.New(),
		Owner:           input.Owner,
		Name:            input.Name,
		Program:         input.Program,
		Text:            input.Text,
		ExtractedSkills: input.ExtractedSkills,
		Recommendations: input.Recommendations,
		CreatedAt:       time.Now(),
	}
	if input.Recommendations != nil {
		c.AlignmentScore = input.Recommendations.AlignmentScore
	}
	f.curricula = append(f.curricula, c)
	return &c, nil
}

func (f *fakeStore) ListCurricula(_ context.Context, owner string) ([]db.Curriculum, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []db.Curriculum{}
	for _, c := range f.curricula {
		if c.Owner == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetCurriculum(_ context.Context, owner string, id uuid.UUID) (*db.Curriculum, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.curricula {
		if c.ID == id && c.Owner == owner {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateCurriculumAnalysis(_ context.Context, owner string, id uuid.UUID, rec *types.CurriculumRecommendation) (*db.Curriculum, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.curricula {
		c := &f.curricula[i]
		if c.ID == id && c.Owner == owner {
			c.Recommendations = rec
			c.AlignmentScore = rec.AlignmentScore
			c.UpdatedAt = time.Now()
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
