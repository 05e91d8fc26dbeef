package employee

import "sort"

// Directory は社員 ID から Employee への対応表です。
// 識別子の解決は常にこの対応表を経由します。
type Directory struct {
	byID map[int]*Employee
}

// NewDirectory は Directory を生成します。同一 ID は後勝ちで登録されます。
func NewDirectory(employees ...*Employee) *Directory {
	d := &Directory{byID: make(map[int]*Employee, len(employees))}
	for _, e := range employees {
		d.Put(e)
	}
	return d
}

// Put は社員を登録し、同一 ID の既存エントリを置き換えた場合は true を返します。
func (d *Directory) Put(e *Employee) bool {
	if e == nil {
		return false
	}
	_, replaced := d.byID[e.ID]
	d.byID[e.ID] = e
	return replaced
}

// Get は ID に対応する社員を返します。
func (d *Directory) Get(id int) (*Employee, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// Len は登録済みの社員数を返します。
func (d *Directory) Len() int {
	return len(d.byID)
}

// IDs は登録済みの ID を昇順で返します。
func (d *Directory) IDs() []int {
	ids := make([]int, 0, len(d.byID))
	for id := range d.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Employees は ID 昇順で社員を返します。
func (d *Directory) Employees() []*Employee {
	ids := d.IDs()
	out := make([]*Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.byID[id])
	}
	return out
}
