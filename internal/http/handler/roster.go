package handler

import (
	"bytes"
	"errors"
	"net/http"
	"roster/internal/core"
	"roster/internal/http/handler/middleware"
	"roster/internal/http/payload"
	"roster/internal/http/view"
	"roster/internal/session"
	"strconv"

	"go.uber.org/zap"
)

const (
	Home            = "GET /{$}"
	LoginForm       = "GET /login"
	Login           = "POST /login"
	Logout          = "GET /logout"
	Students        = "GET /students"
	AddStudent      = "POST /add"
	DeleteStudent   = "GET /delete/{id}"
	EditStudentForm = "GET /edit/{id}"
	EditStudent     = "POST /edit/{id}"
	CreateUserForm  = "GET /users/create"
	CreateUser      = "POST /users/create"
	Health          = "GET /healthz"

	homePath     = "/"
	studentsPath = "/students"
)

type RosterHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	roster           RosterService
	sessions         SessionManager
	views            Renderer
}

func NewRosterHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	rosterService RosterService,
	sessions SessionManager,
	views Renderer,
) *RosterHandler {
	return &RosterHandler{
		logs:             logger,
		requestValidator: requestValidator,
		roster:           rosterService,
		sessions:         sessions,
		views:            views,
	}
}

// Register mounts every route on mux. Student routes sit behind the guard.
func (h *RosterHandler) Register(mux *http.ServeMux, guard Guard) {
	mux.HandleFunc(Home, h.HandleHome)
	mux.HandleFunc(LoginForm, h.HandleLoginForm)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Logout, h.HandleLogout)
	mux.Handle(Students, guard.Require(http.HandlerFunc(h.HandleStudents)))
	mux.Handle(AddStudent, guard.Require(http.HandlerFunc(h.HandleAddStudent)))
	mux.Handle(DeleteStudent, guard.Require(http.HandlerFunc(h.HandleDeleteStudent)))
	mux.Handle(EditStudentForm, guard.Require(http.HandlerFunc(h.HandleEditStudentForm)))
	mux.Handle(EditStudent, guard.Require(http.HandlerFunc(h.HandleEditStudent)))
	mux.HandleFunc(CreateUserForm, h.HandleCreateUserForm)
	mux.HandleFunc(CreateUser, h.HandleCreateUser)
	mux.HandleFunc(Health, h.HandleHealth)
}

func (h *RosterHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Index, view.Page{Title: "Home"})
}

func (h *RosterHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Login, view.Page{Title: "Login"})
}

func (h *RosterHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var form payload.LoginForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.badRequest(w, r, Login, err)
		return
	}

	user, err := h.roster.Authenticate(r.Context(), form.ToCoreAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.logs.Infow("login rejected",
				"username", form.Username,
				"handler", Login,
				"request_id", requestId)
			h.render(w, r, http.StatusUnauthorized, view.Login, view.Page{
				Title: "Login",
				Error: invalidLoginMsg,
				Data:  form.Username,
			})
			return
		}
		h.internalError(w, r, Login, "authentication failed", err)
		return
	}

	if err = h.sessions.Login(w, r, user.ID, user.Username); err != nil {
		h.internalError(w, r, Login, "failed to establish session", err)
		return
	}

	h.logs.Infow("user logged in",
		"userId", user.ID,
		"handler", Login,
		"request_id", requestId)

	h.flash(w, r, session.FlashSuccess, loginSuccessMsg)
	http.Redirect(w, r, studentsPath, http.StatusFound)
}

func (h *RosterHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.internalError(w, r, Logout, "failed to clear session", err)
		return
	}

	h.flash(w, r, session.FlashInfo, logoutMsg)
	http.Redirect(w, r, homePath, http.StatusFound)
}

func (h *RosterHandler) HandleStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.roster.ListStudents(r.Context())
	if err != nil {
		h.internalError(w, r, Students, "failed to list students", err)
		return
	}

	h.render(w, r, http.StatusOK, view.Students, view.Page{
		Title: "Students",
		Data:  students,
	})
}

func (h *RosterHandler) HandleAddStudent(w http.ResponseWriter, r *http.Request) {
	var form payload.StudentForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.badRequest(w, r, AddStudent, err)
		return
	}

	if _, err := h.roster.AddStudent(r.Context(), form.ToCoreStudentMessage()); err != nil {
		h.internalError(w, r, AddStudent, "failed to add student", err)
		return
	}

	h.flash(w, r, session.FlashSuccess, studentAddedMsg)
	http.Redirect(w, r, studentsPath, http.StatusFound)
}

func (h *RosterHandler) HandleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := studentID(r)
	if !ok {
		h.errorPage(w, r, http.StatusNotFound, notFoundMsg)
		return
	}

	if err := h.roster.DeleteStudent(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrStudentNotFound) {
			h.errorPage(w, r, http.StatusNotFound, notFoundMsg)
			return
		}
		h.internalError(w, r, DeleteStudent, "failed to delete student", err)
		return
	}

	h.flash(w, r, session.FlashSuccess, studentDeletedMsg)
	http.Redirect(w, r, studentsPath, http.StatusFound)
}

func (h *RosterHandler) HandleEditStudentForm(w http.ResponseWriter, r *http.Request) {
	student, ok := h.loadStudent(w, r, EditStudentForm)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, view.Edit, view.Page{
		Title: "Edit student",
		Data:  student,
	})
}

func (h *RosterHandler) HandleEditStudent(w http.ResponseWriter, r *http.Request) {
	student, ok := h.loadStudent(w, r, EditStudent)
	if !ok {
		return
	}

	var form payload.StudentForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.badRequest(w, r, EditStudent, err)
		return
	}

	if _, err := h.roster.UpdateStudent(r.Context(), student.ID, form.ToCoreStudentMessage()); err != nil {
		if errors.Is(err, core.ErrStudentNotFound) {
			h.errorPage(w, r, http.StatusNotFound, notFoundMsg)
			return
		}
		h.internalError(w, r, EditStudent, "failed to update student", err)
		return
	}

	h.flash(w, r, session.FlashSuccess, studentUpdatedMsg)
	http.Redirect(w, r, studentsPath, http.StatusFound)
}

func (h *RosterHandler) HandleCreateUserForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.CreateUser, view.Page{Title: "Create user"})
}

func (h *RosterHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var form payload.UserForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		msg := usernameLengthMsg
		switch {
		case form.Username == "" || form.Password == "":
			msg = fieldsRequiredMsg
		case len(form.Password) > core.MaxPasswordBytes:
			msg = passwordLengthMsg
		}
		h.render(w, r, http.StatusBadRequest, view.CreateUser, view.Page{
			Title: "Create user",
			Error: msg,
			Data:  form.Username,
		})
		return
	}

	user, err := h.roster.CreateUser(r.Context(), form.ToCoreAuthMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			h.render(w, r, http.StatusBadRequest, view.CreateUser, view.Page{
				Title: "Create user",
				Error: fieldsRequiredMsg,
				Data:  form.Username,
			})
		case errors.Is(err, core.ErrPasswordTooLong):
			h.render(w, r, http.StatusBadRequest, view.CreateUser, view.Page{
				Title: "Create user",
				Error: passwordLengthMsg,
				Data:  form.Username,
			})
		case errors.Is(err, core.ErrUserExists):
			h.render(w, r, http.StatusConflict, view.CreateUser, view.Page{
				Title: "Create user",
				Error: userExistsMsg,
				Data:  form.Username,
			})
		default:
			h.internalError(w, r, CreateUser, "failed to create user", err)
		}
		return
	}

	h.logs.Infow("user created via form",
		"userId", user.ID,
		"handler", CreateUser,
		"request_id", requestId)

	h.flash(w, r, session.FlashSuccess, userCreatedMsg)
	http.Redirect(w, r, homePath, http.StatusFound)
}

func (h *RosterHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// loadStudent resolves the {id} path value, answering 404 itself when the student does not exist.
func (h *RosterHandler) loadStudent(w http.ResponseWriter, r *http.Request, route string) (core.StudentRecord, bool) {
	id, ok := studentID(r)
	if !ok {
		h.errorPage(w, r, http.StatusNotFound, notFoundMsg)
		return core.StudentRecord{}, false
	}

	student, err := h.roster.GetStudent(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrStudentNotFound) {
			h.errorPage(w, r, http.StatusNotFound, notFoundMsg)
			return core.StudentRecord{}, false
		}
		h.internalError(w, r, route, "failed to get student", err)
		return core.StudentRecord{}, false
	}

	return student, true
}

func studentID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *RosterHandler) flash(w http.ResponseWriter, r *http.Request, category, message string) {
	if err := h.sessions.Flash(w, r, category, message); err != nil {
		h.logs.Errorw("failed to store flash message",
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}
}

func (h *RosterHandler) badRequest(w http.ResponseWriter, r *http.Request, route string, err error) {
	h.logs.Infow("invalid form submitted",
		"error", err,
		"handler", route,
		"request_id", middleware.RequestIDFromContext(r.Context()))
	h.errorPage(w, r, http.StatusBadRequest, badRequestMsg)
}

func (h *RosterHandler) internalError(w http.ResponseWriter, r *http.Request, route, msg string, err error) {
	h.logs.Errorw(msg,
		"error", err,
		"handler", route,
		"request_id", middleware.RequestIDFromContext(r.Context()))
	h.errorPage(w, r, http.StatusInternalServerError, oopsErr)
}

func (h *RosterHandler) errorPage(w http.ResponseWriter, r *http.Request, code int, detail string) {
	h.render(w, r, code, view.Error, view.Page{
		Title: http.StatusText(code),
		Data:  detail,
	})
}

// render buffers the page so a template failure can still turn into a clean 500.
func (h *RosterHandler) render(w http.ResponseWriter, r *http.Request, code int, name string, page view.Page) {
	page.Username = h.sessions.Current(r).Username
	page.Flashes = h.sessions.PopFlashes(r)

	var buf bytes.Buffer
	if err := h.views.Render(&buf, name, page); err != nil {
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", name,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}
}
