package dashboard

import (
	"context"
	"encoding/json"

	"storefront-admin/internal/view"
	"storefront-admin/pkg/log"
)

// page is the type-erased surface the handlers drive.
type page interface {
	mount(ctx context.Context, sess *session) error
	data(sess *session) pageData
	search(sess *session, value string)
	applyFilter(sess *session, key, value string)
	paginate(sess *session, direction int)
	selectItem(sess *session, id string) bool
	closeModal(sess *session)
	toggleSelected(sess *session, id string)
}

type listPage[T any] struct {
	name       string
	modalTitle string
	cfg        view.Config[T]
	load       view.Loader[T]
	row        func(item T) row
	lastPage   int
	selectable bool
	l          log.Logger
}

// view returns the session's view instance, creating it on first use.
func (p *listPage[T]) view(sess *session) *view.ListView[T] {
	if v, ok := sess.views[p.name].(*view.ListView[T]); ok {
		return v
	}
	v := view.New(p.cfg, p.l)
	v.SetBounds(0, p.lastPage)
	sess.views[p.name] = v
	return v
}

func (p *listPage[T]) mount(ctx context.Context, sess *session) error {
	return p.view(sess).Mount(ctx, p.load)
}

func (p *listPage[T]) search(sess *session, value string) { p.view(sess).SetSearch(value) }

func (p *listPage[T]) applyFilter(sess *session, key, value string) {
	p.view(sess).ApplyFilter(key, value)
}

func (p *listPage[T]) paginate(sess *session, direction int) {
	p.view(sess).HandlePaginationGeneric(direction)
}

func (p *listPage[T]) selectItem(sess *session, id string) bool {
	return p.view(sess).SelectByID(id)
}

func (p *listPage[T]) closeModal(sess *session) { p.view(sess).CloseModal() }

func (p *listPage[T]) toggleSelected(sess *session, id string) {
	if p.selectable {
		p.view(sess).ToggleSelected(id)
	}
}

func (p *listPage[T]) data(sess *session) pageData {
	st := p.view(sess).State()

	applied := make(map[string]string, len(st.AppliedFilters))
	for _, f := range st.AppliedFilters {
		applied[f.Key] = f.Value
	}
	filters := make([]filterData, 0, len(st.Filters))
	for _, f := range st.Filters {
		filters = append(filters, filterData{
			Key:          f.Key,
			Label:        f.Label,
			OperatorText: f.OperatorText,
			Options:      f.Options,
			Selected:     applied[f.Key],
		})
	}

	rows := make([]row, 0, len(st.Items))
	for _, item := range st.Items {
		r := p.row(item)
		r.Selected = st.Selected[r.ID]
		rows = append(rows, r)
	}

	d := pageData{
		Name:          p.name,
		Title:         st.Title,
		Singular:      st.Singular,
		Plural:        st.Plural,
		Filters:       filters,
		SearchValue:   st.SearchValue,
		Rows:          rows,
		Total:         st.Total,
		ModalOpen:     st.ModalOpen,
		ModalTitle:    p.modalTitle,
		Page:          st.Cursor.Current,
		HasPrevious:   st.HasPrevious,
		HasNext:       st.HasNext,
		Selectable:    p.selectable,
		SelectedCount: len(st.Selected),
		Nav:           nav,
	}
	if st.Err != nil {
		d.Error = st.Err.Error()
	}
	if st.ModalOpen {
		raw, err := json.MarshalIndent(st.Item, "", "  ")
		if err != nil {
			d.ModalJSON = err.Error()
		} else {
			d.ModalJSON = string(raw)
		}
	}
	return d
}
