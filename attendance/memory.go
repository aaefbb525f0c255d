package attendance

import (
	"context"
	"sort"
	"sync"

	"github.com/acadportal/AMSBackend/models"
)

type aggKey struct {
	student uint
	course  uint
}

type courseInfo struct {
	code string
	name string
}

// MemoryStore is a mutex-guarded Store for tests and local development.
// Transactions snapshot the whole state up front and restore it when the
// transaction function fails, which gives the same commit-or-rollback
// behavior the recorder relies on in PostgreSQL.
type MemoryStore struct {
	mu         sync.Mutex
	courses    map[uint]courseInfo
	teaching   map[[2]uint]bool
	aggregates map[aggKey]*models.AttendanceAggregate
	events     []models.AttendanceEvent
	absences   []models.AbsenceRecord
	nextEvent  uint
	nextAbs    uint

	// fault injection, set directly by in-package tests
	eventErr   error
	absenceErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		courses:    make(map[uint]courseInfo),
		teaching:   make(map[[2]uint]bool),
		aggregates: make(map[aggKey]*models.AttendanceAggregate),
	}
}

// AddCourse registers catalog reference data.
func (m *MemoryStore) AddCourse(id uint, code, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses[id] = courseInfo{code: code, name: name}
}

// AssignFaculty marks facultyID as teaching courseID.
func (m *MemoryStore) AssignFaculty(facultyID, courseID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teaching[[2]uint{facultyID, courseID}] = true
}

// Aggregate returns a copy of one (student, course) row, if present.
func (m *MemoryStore) Aggregate(studentID, courseID uint) (models.AttendanceAggregate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.aggregates[aggKey{studentID, courseID}]
	if !ok {
		return models.AttendanceAggregate{}, false
	}
	return *agg, true
}

// Events returns a copy of the event log.
func (m *MemoryStore) Events() []models.AttendanceEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AttendanceEvent(nil), m.events...)
}

// Absences returns a copy of the absence log.
func (m *MemoryStore) Absences() []models.AbsenceRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AbsenceRecord(nil), m.absences...)
}

func (m *MemoryStore) snapshot() *MemoryStore {
	snap := &MemoryStore{
		courses:    make(map[uint]courseInfo, len(m.courses)),
		teaching:   make(map[[2]uint]bool, len(m.teaching)),
		aggregates: make(map[aggKey]*models.AttendanceAggregate, len(m.aggregates)),
		events:     append([]models.AttendanceEvent(nil), m.events...),
		absences:   append([]models.AbsenceRecord(nil), m.absences...),
		nextEvent:  m.nextEvent,
		nextAbs:    m.nextAbs,
	}
	for k, v := range m.courses {
		snap.courses[k] = v
	}
	for k, v := range m.teaching {
		snap.teaching[k] = v
	}
	for k, v := range m.aggregates {
		cp := *v
		snap.aggregates[k] = &cp
	}
	return snap
}

func (m *MemoryStore) restore(snap *MemoryStore) {
	m.courses = snap.courses
	m.teaching = snap.teaching
	m.aggregates = snap.aggregates
	m.events = snap.events
	m.absences = snap.absences
	m.nextEvent = snap.nextEvent
	m.nextAbs = snap.nextAbs
}

// InTx serializes transactions on the store mutex and restores the
// pre-transaction state when fn fails.
func (m *MemoryStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.snapshot()
	if err := fn(&memTx{m}); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *MemoryStore) CourseExists(ctx context.Context, courseID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).CourseExists(ctx, courseID)
}

func (m *MemoryStore) TeachesCourse(ctx context.Context, facultyID, courseID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).TeachesCourse(ctx, facultyID, courseID)
}

func (m *MemoryStore) CreateEvent(ctx context.Context, ev *models.AttendanceEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).CreateEvent(ctx, ev)
}

func (m *MemoryStore) IncrementAggregate(ctx context.Context, studentID, courseID uint, present bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).IncrementAggregate(ctx, studentID, courseID, present)
}

func (m *MemoryStore) CreateAbsence(ctx context.Context, rec *models.AbsenceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).CreateAbsence(ctx, rec)
}

func (m *MemoryStore) CourseTotalsForStudent(ctx context.Context, studentID uint) ([]CourseTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).CourseTotalsForStudent(ctx, studentID)
}

func (m *MemoryStore) OverallTotalsForStudent(ctx context.Context, studentID uint) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{m}).OverallTotalsForStudent(ctx, studentID)
}

// memTx is the lock-free view handed to InTx callbacks; the enclosing
// MemoryStore call already holds the mutex.
type memTx struct {
	m *MemoryStore
}

func (t *memTx) InTx(ctx context.Context, fn func(tx Store) error) error {
	// already inside a transaction
	return fn(t)
}

func (t *memTx) CourseExists(ctx context.Context, courseID uint) (bool, error) {
	_, ok := t.m.courses[courseID]
	return ok, nil
}

func (t *memTx) TeachesCourse(ctx context.Context, facultyID, courseID uint) (bool, error) {
	return t.m.teaching[[2]uint{facultyID, courseID}], nil
}

func (t *memTx) CreateEvent(ctx context.Context, ev *models.AttendanceEvent) error {
	if t.m.eventErr != nil {
		return t.m.eventErr
	}
	t.m.nextEvent++
	ev.ID = t.m.nextEvent
	t.m.events = append(t.m.events, *ev)
	return nil
}

func (t *memTx) IncrementAggregate(ctx context.Context, studentID, courseID uint, present bool) error {
	key := aggKey{studentID, courseID}
	agg, ok := t.m.aggregates[key]
	if !ok {
		agg = &models.AttendanceAggregate{StudentID: studentID, CourseID: courseID}
		t.m.aggregates[key] = agg
	}
	agg.TotalHours++
	if present {
		agg.PresentHours++
	}
	return nil
}

func (t *memTx) CreateAbsence(ctx context.Context, rec *models.AbsenceRecord) error {
	if t.m.absenceErr != nil {
		return t.m.absenceErr
	}
	t.m.nextAbs++
	rec.ID = t.m.nextAbs
	t.m.absences = append(t.m.absences, *rec)
	return nil
}

func (t *memTx) CourseTotalsForStudent(ctx context.Context, studentID uint) ([]CourseTotals, error) {
	var rows []CourseTotals
	for key, agg := range t.m.aggregates {
		if key.student != studentID {
			continue
		}
		info := t.m.courses[key.course]
		rows = append(rows, CourseTotals{
			CourseName:   info.name,
			CourseCode:   info.code,
			TotalHours:   agg.TotalHours,
			PresentHours: agg.PresentHours,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CourseName < rows[j].CourseName })
	return rows, nil
}

func (t *memTx) OverallTotalsForStudent(ctx context.Context, studentID uint) (int, int, error) {
	var total, present int
	for key, agg := range t.m.aggregates {
		if key.student != studentID {
			continue
		}
		total += agg.TotalHours
		present += agg.PresentHours
	}
	return total, present, nil
}
