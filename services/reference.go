package services

import (
	"sort"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/abooda7m/HR-PROJECT/config"
	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

const (
	cacheKeyMembers = "members"
	cacheKeyTasks   = "tasks"
)

// hrDeptAliases are the department spellings that count as the HR committee
// when no explicit HR_NAMES list is configured.
var hrDeptAliases = map[string]struct{}{
	"hr":              {},
	"human resources": {},
	"الموارد البشرية": {},
}

// ReferenceService reads members and tasks behind a short-TTL cache.
// Every write path must call Invalidate so readers never see their own
// writes stale.
type ReferenceService struct {
	cfg   *config.Config
	cache *expirable.LRU[string, any]
}

func NewReferenceService(cfg *config.Config) *ReferenceService {
	return &ReferenceService{
		cfg:   cfg,
		cache: expirable.NewLRU[string, any](4, nil, cfg.ReferenceCacheTTL),
	}
}

// Invalidate drops every cached reference read.
func (s *ReferenceService) Invalidate() { s.cache.Purge() }

// Members returns the roster with normalized join keys. Rows missing a name
// or department are dropped, mirroring the sheet cleanup rules.
func (s *ReferenceService) Members() ([]models.Member, error) {
	if v, ok := s.cache.Get(cacheKeyMembers); ok {
		return v.([]models.Member), nil
	}
	var rows []models.Member
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Member, 0, len(rows))
	for _, m := range rows {
		m.Name = CleanText(m.Name)
		m.Department = CleanText(m.Department)
		m.MemberID = NormalizeMemberID(m.MemberID)
		m.NationalID = CleanText(m.NationalID)
		if m.Name == "" || m.Department == "" {
			continue
		}
		out = append(out, m)
	}
	s.cache.Add(cacheKeyMembers, out)
	return out, nil
}

// Tasks returns the task catalog. Rows missing a name, department or a
// positive duration are dropped.
func (s *ReferenceService) Tasks() ([]models.Task, error) {
	if v, ok := s.cache.Get(cacheKeyTasks); ok {
		return v.([]models.Task), nil
	}
	var rows []models.Task
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Task, 0, len(rows))
	for _, t := range rows {
		t.Name = CleanText(t.Name)
		t.Department = CleanText(t.Department)
		if t.Name == "" || t.Department == "" || t.Minutes <= 0 {
			continue
		}
		out = append(out, t)
	}
	s.cache.Add(cacheKeyTasks, out)
	return out, nil
}

// ListDepartments returns the sorted unique departments from the roster.
func (s *ReferenceService) ListDepartments() ([]string, error) {
	members, err := s.Members()
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var out []string
	for _, m := range members {
		if _, ok := seen[m.Department]; ok {
			continue
		}
		seen[m.Department] = struct{}{}
		out = append(out, m.Department)
	}
	sort.Strings(out)
	return out, nil
}

func (s *ReferenceService) ListMembersByDept(dept string) ([]models.Member, error) {
	members, err := s.Members()
	if err != nil {
		return nil, err
	}
	dept = CleanText(dept)
	var out []models.Member
	for _, m := range members {
		if m.Department == dept {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *ReferenceService) ListTasksByDept(dept string) ([]models.Task, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	dept = CleanText(dept)
	var out []models.Task
	for _, t := range tasks {
		if t.Department == dept {
			out = append(out, t)
		}
	}
	return out, nil
}

// FindMember resolves one member of a department by canonical id; nil when
// there is no match.
func (s *ReferenceService) FindMember(dept, memberID string) (*models.Member, error) {
	members, err := s.ListMembersByDept(dept)
	if err != nil {
		return nil, err
	}
	memberID = NormalizeMemberID(memberID)
	for i := range members {
		if members[i].MemberID == memberID {
			return &members[i], nil
		}
	}
	return nil, nil
}

// FindTask resolves one task of a department by name; nil when absent.
func (s *ReferenceService) FindTask(dept, name string) (*models.Task, error) {
	tasks, err := s.ListTasksByDept(dept)
	if err != nil {
		return nil, err
	}
	name = CleanText(name)
	for i := range tasks {
		if tasks[i].Name == name {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// ListHRNames returns reviewer names for the review dropdown. The configured
// HR_NAMES list wins; otherwise members of the HR department are used.
func (s *ReferenceService) ListHRNames() ([]string, error) {
	names := map[string]struct{}{}
	for _, n := range s.cfg.HRNames {
		if n = CleanText(n); n != "" {
			names[n] = struct{}{}
		}
	}
	if len(names) == 0 {
		members, err := s.Members()
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if _, ok := hrDeptAliases[strings.ToLower(m.Department)]; ok {
				names[m.Name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

// ReplaceMembers overwrites the whole roster and invalidates the cache.
func (s *ReferenceService) ReplaceMembers(rows []models.Member) error {
	for i := range rows {
		rows[i].ID = 0
	}
	if err := database.ReplaceTable(database.DB, rows); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// ReplaceTasks overwrites the task catalog and invalidates the cache.
func (s *ReferenceService) ReplaceTasks(rows []models.Task) error {
	for i := range rows {
		rows[i].ID = 0
	}
	if err := database.ReplaceTable(database.DB, rows); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}
