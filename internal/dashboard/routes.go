package dashboard

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the dashboard pages onto r.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.GET("/", h.Index)

	for _, name := range []string{pageLogs, pageOrders, pageTemplates} {
		base := "/" + name
		r.GET(base, h.Page(name))
		r.POST(base+"/search", h.Search(name))
		r.POST(base+"/filters", h.ApplyFilter(name))
		r.POST(base+"/page", h.Paginate(name))
		r.POST(base+"/items/:id", h.SelectItem(name))
		r.POST(base+"/modal/close", h.CloseModal(name))
	}

	r.POST("/"+pageOrders+"/selection/:id", h.ToggleSelected(pageOrders))
}
