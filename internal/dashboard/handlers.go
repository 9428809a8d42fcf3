package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-admin/internal/resources"
)

const listTemplate = "list.html"

// Index redirects to the logs page.
func (h *handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+pageLogs)
}

// Page renders a list page, mounting its view on the first visit or on ?reload=1.
func (h *handler) Page(name string) gin.HandlerFunc {
	p := h.mustPage(name)
	return func(c *gin.Context) {
		sess := h.sessions.get(c)
		sess.mu.Lock()
		defer sess.mu.Unlock()

		if !sess.mounted[name] || c.Query("reload") == "1" {
			sess.mounted[name] = true
			// a failed mount is rendered from the view state
			ctx := resources.WithClientIP(c.Request.Context(), c.ClientIP())
			_ = p.mount(ctx, sess)
		}

		c.HTML(http.StatusOK, listTemplate, p.data(sess))
	}
}

// Search sets the free-text search value from form field q.
func (h *handler) Search(name string) gin.HandlerFunc {
	return h.action(name, func(c *gin.Context, p page, sess *session) int {
		p.search(sess, c.PostForm("q"))
		return 0
	})
}

// ApplyFilter sets filter key to value; an empty value clears it.
func (h *handler) ApplyFilter(name string) gin.HandlerFunc {
	return h.action(name, func(c *gin.Context, p page, sess *session) int {
		key := c.PostForm("key")
		if key == "" {
			return http.StatusBadRequest
		}
		p.applyFilter(sess, key, c.PostForm("value"))
		return 0
	})
}

// Paginate moves the cursor by form field direction (-1 or 1).
func (h *handler) Paginate(name string) gin.HandlerFunc {
	return h.action(name, func(c *gin.Context, p page, sess *session) int {
		direction, err := strconv.Atoi(c.PostForm("direction"))
		if err != nil || (direction != -1 && direction != 1) {
			return http.StatusBadRequest
		}
		p.paginate(sess, direction)
		return 0
	})
}

// SelectItem opens the detail modal for item :id.
func (h *handler) SelectItem(name string) gin.HandlerFunc {
	return h.action(name, func(c *gin.Context, p page, sess *session) int {
		if !p.selectItem(sess, c.Param("id")) {
			return http.StatusNotFound
		}
		return 0
	})
}

// CloseModal closes the detail modal.
func (h *handler) CloseModal(name string) gin.HandlerFunc {
	return h.action(name, func(c *gin.Context, p page, sess *session) int {
		p.closeModal(sess)
		return 0
	})
}

// ToggleSelected flips the bulk selection of item :id.
func (h *handler) ToggleSelected(name string) gin.HandlerFunc {
	return h.action(name, func(c *gin.Context, p page, sess *session) int {
		p.toggleSelected(sess, c.Param("id"))
		return 0
	})
}

// action runs fn under the session lock and redirects back to the page.
// A non-zero status from fn aborts with that status instead.
func (h *handler) action(name string, fn func(c *gin.Context, p page, sess *session) int) gin.HandlerFunc {
	p := h.mustPage(name)
	return func(c *gin.Context) {
		sess := h.sessions.get(c)
		sess.mu.Lock()
		status := fn(c, p, sess)
		sess.mu.Unlock()

		if status != 0 {
			h.l.Warnf(c.Request.Context(), "internal.dashboard.action %s %s: status %d", name, c.FullPath(), status)
			c.AbortWithStatus(status)
			return
		}
		c.Redirect(http.StatusSeeOther, "/"+name)
	}
}

func (h *handler) mustPage(name string) page {
	p, ok := h.pages[name]
	if !ok {
		panic("internal/dashboard: unknown page " + name)
	}
	return p
}
