package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/cache"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/middleware"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/services"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/session"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/utils"
	"github.com/gin-gonic/gin"
)

// TodoHandler serves the todo pages. Cache mutations are always
// ordered after the corresponding database call; when the database
// call fails on update/delete the stale id is pruned from the cache.
type TodoHandler struct {
	todoService *services.TodoService
	todos       *cache.TodoCache
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService, todos *cache.TodoCache) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		todos:       todos,
	}
}

// List renders the task list from the cache snapshot of the current user.
func (h *TodoHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError500(c, "no authenticated user in request context", "/")
		return
	}

	status, messages := session.PopMessages(c)
	fullTitle := capitalize(user.Username) + "'s Task List"

	c.HTML(http.StatusOK, "todo_list.html", gin.H{
		"title":          fullTitle,
		"titlePage":      fullTitle,
		"username":       user.Username,
		"todos":          h.todos.ReadAll(user.ID),
		"messagesStatus": status,
		"messages":       messages,
		"fromProtected":  true,
	})
}

// CreateModal renders the todo creation dialog.
func (h *TodoHandler) CreateModal(c *gin.Context) {
	c.HTML(http.StatusOK, "todo_creation_modal.html", gin.H{})
}

// Create handles the POST of the creation form.
func (h *TodoHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError500(c, "no authenticated user in request context", "/")
		return
	}

	type TodoForm struct {
		Title       string `form:"title"`
		Description string `form:"description"`
	}

	var form TodoForm
	_ = c.ShouldBind(&form)

	if strings.TrimSpace(form.Title) == "" {
		renderError400(c, "the title cannot be empty.", "/todo/list")
		return
	}

	todo, err := h.todoService.Add(user.ID, form.Title, form.Description)
	if err != nil {
		// The cache is left untouched when the insert fails.
		renderError500(c, err.Error(), "/todo/list")
		return
	}
	h.todos.InsertFront(user.ID, *todo)

	if !addFlash(c, constants.FlashSuccess, "Task created successfully!!") {
		return
	}
	c.Redirect(http.StatusFound, "/todo/list")
}

// EditModal renders the todo update dialog for ?id=<int>.
func (h *TodoHandler) EditModal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError500(c, "no authenticated user in request context", "/")
		return
	}

	id, err := parseID(c)
	if err != nil {
		renderError400(c, "invalid todo id.", "/todo/list")
		return
	}

	todo, err := h.todoService.Get(id)
	if err != nil {
		// The backing row is gone (or unreadable); drop the stale entry.
		h.todos.Remove(user.ID, id)

		c.HTML(http.StatusOK, "todo_update_modal.html", gin.H{
			"isError": true,
			"reason":  err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "todo_update_modal.html", gin.H{
		"todo":     todo,
		"datetime": utils.ConvertDatetime(session.Timezone(c), todo.CreatedAt),
	})
}

// Update handles the POST of the edit form for ?id=<int>.
func (h *TodoHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError500(c, "no authenticated user in request context", "/")
		return
	}

	id, err := parseID(c)
	if err != nil {
		renderError400(c, "invalid todo id.", "/todo/list")
		return
	}

	type TodoEditForm struct {
		Title       string `form:"title"`
		Description string `form:"description"`
		Status      string `form:"status"`
	}

	var form TodoEditForm
	_ = c.ShouldBind(&form)

	if strings.TrimSpace(form.Title) == "" {
		renderError400(c, "the title cannot be empty.", "/todo/list")
		return
	}
	status := checkboxValue(form.Status)

	if err := h.todoService.Update(id, form.Title, form.Description, status); err != nil {
		h.todos.Remove(user.ID, id)
		renderStorageError(c, err, "/todo/list")
		return
	}
	h.todos.UpdateInPlace(user.ID, id, form.Title, form.Description, status)

	if !addFlash(c, constants.FlashSuccess, "Task successfully updated!!") {
		return
	}
	c.Redirect(http.StatusFound, "/todo/list")
}

// Delete handles the DELETE request for ?id=<int>. The cache entry is
// pruned whether or not the database delete found the row.
func (h *TodoHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError500(c, "no authenticated user in request context", "/")
		return
	}

	id, err := parseID(c)
	if err != nil {
		renderError400(c, "invalid todo id.", "/todo/list")
		return
	}

	if err := h.todoService.Remove(id); err != nil {
		h.todos.Remove(user.ID, id)
		renderStorageError(c, err, "/todo/list")
		return
	}
	h.todos.Remove(user.ID, id)

	if !addFlash(c, constants.FlashSuccess, "Task successfully deleted!!") {
		return
	}
	c.Redirect(http.StatusFound, "/todo/list")
}

func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Query("id"), 10, 64)
}

// checkboxValue maps the checkbox form values to a bool; anything but
// "on"/"true" is treated as unchecked.
func checkboxValue(s string) bool {
	s = strings.ToLower(s)
	return s == "on" || s == "true"
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
