package employee

import "github.com/sirupsen/logrus"

// Hierarchy は構築済みの組織ツリーです。
type Hierarchy struct {
	dir     *Directory
	roots   []*Employee
	orphans []*Employee
}

// Directory は階層の元となった対応表を返します。
func (h *Hierarchy) Directory() *Directory {
	return h.dir
}

// Roots は上長を持たない社員を ID 昇順で返します。
func (h *Hierarchy) Roots() []*Employee {
	return h.roots
}

// Orphans は上長 ID が解決できなかった社員を ID 昇順で返します。
func (h *Hierarchy) Orphans() []*Employee {
	return h.orphans
}

// Root はトップがちょうど 1 人の場合にその社員を返します。
func (h *Hierarchy) Root() (*Employee, bool) {
	if len(h.roots) != 1 {
		return nil, false
	}
	return h.roots[0], true
}

// Builder は社員の対応表から組織ツリーを構築します。
type Builder struct {
	logger logrus.FieldLogger
}

// NewBuilder は Builder を生成します。
func NewBuilder(logger logrus.FieldLogger) *Builder {
	return &Builder{logger: loggerOrDiscard(logger)}
}

// Build は各社員の部下リストを埋めます。
// 既存の部下リストは最初に空にされるため、同じ対応表で再構築しても辺は重複しません。
func (b *Builder) Build(dir *Directory) *Hierarchy {
	if dir == nil {
		dir = NewDirectory()
	}

	employees := dir.Employees()
	for _, e := range employees {
		e.Subordinates = nil
	}

	h := &Hierarchy{dir: dir}
	for _, e := range employees {
		if e.ManagerID == nil {
			b.logger.WithFields(employeeFields(e)).Info("top of organization")
			h.roots = append(h.roots, e)
			continue
		}

		manager, ok := dir.Get(*e.ManagerID)
		if !ok {
			b.logger.WithFields(employeeFields(e)).
				WithField("manager_id", *e.ManagerID).
				Warn("manager not found")
			h.orphans = append(h.orphans, e)
			continue
		}
		manager.Subordinates = append(manager.Subordinates, e)
	}

	return h
}
