package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"campus-core/backend/internal/model"
)

// ── Mock UserRepository ──
// 邮箱唯一性模仿数据库唯一索引：不区分大小写，冲突返回 gorm.ErrDuplicatedKey

type mockUserRepo struct {
	users     map[string]*model.User // key: user_id
	idCounter int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.idCounter++
		user.UserID = fmt.Sprintf("user-%d", m.idCounter)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for id, u := range m.users {
		if id != user.UserID && strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListActive(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.IsActive {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

// ── Mock CourseRepository ──
// 课程编码唯一性同样模仿唯一索引

type mockCourseRepo struct {
	courses   map[string]*model.Course
	idCounter int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	for _, c := range m.courses {
		if c.Code == course.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if course.CourseID == "" {
		m.idCounter++
		course.CourseID = fmt.Sprintf("course-%d", m.idCounter)
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	for id, c := range m.courses {
		if id != course.CourseID && c.Code == course.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	course.UpdatedAt = time.Now()
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	delete(m.courses, id)
	return nil
}

// ── Mock EvaluationRepository ──

type mockEvaluationRepo struct {
	evals     map[string]*model.Evaluation
	idCounter int
}

func newMockEvaluationRepo() *mockEvaluationRepo {
	return &mockEvaluationRepo{evals: make(map[string]*model.Evaluation)}
}

func (m *mockEvaluationRepo) Create(_ context.Context, eval *model.Evaluation) error {
	if eval.EvaluationID == "" {
		m.idCounter++
		eval.EvaluationID = fmt.Sprintf("eval-%d", m.idCounter)
	}
	eval.CreatedAt = time.Now()
	eval.UpdatedAt = time.Now()
	m.evals[eval.EvaluationID] = eval
	return nil
}

func (m *mockEvaluationRepo) GetByID(_ context.Context, id string) (*model.Evaluation, error) {
	if e, ok := m.evals[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEvaluationRepo) ListByCourse(_ context.Context, courseID string) ([]model.Evaluation, error) {
	var result []model.Evaluation
	for _, e := range m.evals {
		if e.CourseID == courseID {
			result = append(result, *e)
		}
	}
	// 截止时间升序，无截止时间排最后
	sort.Slice(result, func(i, j int) bool {
		di, dj := result[i].DueDate, result[j].DueDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
	return result, nil
}

func (m *mockEvaluationRepo) Delete(_ context.Context, id string) error {
	delete(m.evals, id)
	return nil
}

// ── Mock SubmissionRepository ──
// (evaluation_id, student_id) 复合唯一：冲突返回 gorm.ErrDuplicatedKey

type mockSubmissionRepo struct {
	subs      map[string]*model.Submission
	evalRepo  *mockEvaluationRepo
	userRepo  *mockUserRepo
	idCounter int
}

func newMockSubmissionRepo(evalRepo *mockEvaluationRepo, userRepo *mockUserRepo) *mockSubmissionRepo {
	return &mockSubmissionRepo{
		subs:     make(map[string]*model.Submission),
		evalRepo: evalRepo,
		userRepo: userRepo,
	}
}

func (m *mockSubmissionRepo) Create(_ context.Context, sub *model.Submission) error {
	for _, s := range m.subs {
		if s.EvaluationID == sub.EvaluationID && s.StudentID == sub.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	if sub.SubmissionID == "" {
		m.idCounter++
		sub.SubmissionID = fmt.Sprintf("sub-%d", m.idCounter)
	}
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = time.Now()
	m.subs[sub.SubmissionID] = sub
	return nil
}

// loadAssoc 模仿真实仓储的 Preload
func (m *mockSubmissionRepo) loadAssoc(sub *model.Submission) {
	if e, ok := m.evalRepo.evals[sub.EvaluationID]; ok {
		sub.Evaluation = e
	}
	if u, ok := m.userRepo.users[sub.StudentID]; ok {
		sub.Student = u
	}
}

func (m *mockSubmissionRepo) GetByID(_ context.Context, id string) (*model.Submission, error) {
	if s, ok := m.subs[id]; ok {
		m.loadAssoc(s)
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubmissionRepo) List(_ context.Context) ([]model.Submission, error) {
	var result []model.Submission
	for _, s := range m.subs {
		m.loadAssoc(s)
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}

func (m *mockSubmissionRepo) ListByCourse(_ context.Context, courseID string) ([]model.Submission, error) {
	var result []model.Submission
	for _, s := range m.subs {
		e, ok := m.evalRepo.evals[s.EvaluationID]
		if !ok || e.CourseID != courseID {
			continue
		}
		m.loadAssoc(s)
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.Before(result[j].SubmittedAt)
	})
	return result, nil
}

func (m *mockSubmissionRepo) Update(_ context.Context, sub *model.Submission) error {
	sub.UpdatedAt = time.Now()
	m.subs[sub.SubmissionID] = sub
	return nil
}

// Delete 幂等：不存在也不报错
func (m *mockSubmissionRepo) Delete(_ context.Context, id string) error {
	delete(m.subs, id)
	return nil
}
