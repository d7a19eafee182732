// Course HTTP handlers.
//
// This file exposes the REST endpoints for course resources:
//   - POST /courses/                        (create)
//   - GET  /courses/{tutor_id}              (list a tutor's courses)
//   - GET  /courses/{tutor_id}/{course_id}  (fetch one course)
//
// Handlers are transport-thin: they extract and validate inputs, call the
// course store, and translate outcomes through the error taxonomy. A
// payload that fails validation never reaches the store.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ahyz0569/go-tutor-backend/internal/apierr"
	"github.com/ahyz0569/go-tutor-backend/internal/store"
	"github.com/ahyz0569/go-tutor-backend/internal/validation"
)

// Handlers groups the HTTP endpoints and the state they share: the course
// store and the health-check visit counter. The counter lives behind its
// own mutex with the same discipline as the in-memory store: held only to
// bump and read, never across a blocking call.
type Handlers struct {
	store    store.Store
	greeting string

	mu     sync.Mutex
	visits uint64
}

// New constructs a Handlers bound to the given course store. greeting is
// the fixed prefix of the health-check response.
func New(s store.Store, greeting string) *Handlers {
	return &Handlers{store: s, greeting: greeting}
}

// pathValidator checks path-derived ids against the same bounds as the
// create payload. It reports json-tag field names so flattened paths match
// the wire names.
var pathValidator = func() *validator.Validate {
	v := validator.New()
	validation.UseJSONFieldNames(v)
	return v
}()

// tutorPath carries the path parameter of the list endpoint.
type tutorPath struct {
	TutorID int `json:"tutor_id" validate:"required,gte=1,lte=100"`
}

// coursePath carries the path parameters of the get-one endpoint. Both ids
// obey the same bounds as the create payload.
type coursePath struct {
	TutorID  int `json:"tutor_id" validate:"required,gte=1,lte=100"`
	CourseID int `json:"course_id" validate:"required,gte=1,lte=100"`
}

// NewCourseRequest is the JSON payload for creating a course. course_id and
// posted_time are never accepted from clients; the store assigns both.
type NewCourseRequest struct {
	// TutorID is the owning tutor, in [1,100].
	TutorID int `json:"tutor_id" binding:"required,gte=1,lte=100" example:"1"`
	// CourseName is the course title, at least 3 characters.
	CourseName string `json:"course_name" binding:"required,min=3" example:"Rust 101"`
}

// pathInt parses a path parameter as an integer. A non-numeric value is an
// extraction failure, not a domain validation failure.
func pathInt(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// checkPath validates parsed path ids, returning a Validation error with
// flattened details when any id is out of range.
func checkPath(p any) *apierr.Error {
	err := pathValidator.Struct(p)
	if err == nil {
		return nil
	}
	if tree, collected := validation.Collect(err); collected {
		return apierr.Validation("Validation error", validation.Details(tree))
	}
	return apierr.Framework(err)
}

// CreateCourse godoc
// @ID          createCourse
// @Summary     Create a new course
// @Description Adds a course for a tutor. The course id is assigned per tutor (count of the tutor's courses + 1) and posted_time is set by the server.
// @Tags        Courses
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.NewCourseRequest  true  "New course payload"
//
// @Success     200  {object}  domain.Course
// @Failure     400  {object}  apierr.ValidationBody  "Validation failed"
// @Failure     500  {object}  apierr.ErrorBody       "Database or internal error"
// @Router      /courses/ [post]
func (h *Handlers) CreateCourse(c *gin.Context) {
	var req NewCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if tree, collected := validation.Collect(err); collected {
			respondError(c, apierr.Validation("Validation error", validation.Details(tree)))
			return
		}
		// Malformed JSON or a type mismatch is a body-extraction failure.
		respondError(c, apierr.Framework(err))
		return
	}

	course, err := h.store.Create(c.Request.Context(), req.TutorID, req.CourseName)
	if err != nil {
		respondError(c, apierr.Database(err))
		return
	}
	ok(c, http.StatusOK, course)
}

// ListCourses godoc
// @ID          listCourses
// @Summary     List a tutor's courses
// @Description Returns every course of the tutor in insertion order. A tutor without courses yields an empty array, not an error.
// @Tags        Courses
// @Produce     json
//
// @Param       tutor_id  path  int  true  "Tutor id"  minimum(1) maximum(100)
//
// @Success     200  {array}   domain.Course
// @Failure     400  {object}  apierr.ValidationBody  "Tutor id out of range"
// @Failure     500  {object}  apierr.ErrorBody       "Database or internal error"
// @Router      /courses/{tutor_id} [get]
func (h *Handlers) ListCourses(c *gin.Context) {
	tutorID, err := pathInt(c, "tutor_id")
	if err != nil {
		respondError(c, apierr.Framework(err))
		return
	}
	if verr := checkPath(tutorPath{TutorID: tutorID}); verr != nil {
		respondError(c, verr)
		return
	}

	courses, err := h.store.ListForTutor(c.Request.Context(), tutorID)
	if err != nil {
		respondError(c, apierr.Database(err))
		return
	}
	ok(c, http.StatusOK, courses)
}

// GetCourse godoc
// @ID          getCourse
// @Summary     Get one course
// @Description Returns the unique course matching both ids.
// @Tags        Courses
// @Produce     json
//
// @Param       tutor_id   path  int  true  "Tutor id"   minimum(1) maximum(100)
// @Param       course_id  path  int  true  "Course id"  minimum(1) maximum(100)
//
// @Success     200  {object}  domain.Course
// @Failure     400  {object}  apierr.ValidationBody  "Id out of range"
// @Failure     404  {object}  apierr.ErrorBody       "Course not found"
// @Failure     500  {object}  apierr.ErrorBody       "Database or internal error"
// @Router      /courses/{tutor_id}/{course_id} [get]
func (h *Handlers) GetCourse(c *gin.Context) {
	tutorID, err := pathInt(c, "tutor_id")
	if err != nil {
		respondError(c, apierr.Framework(err))
		return
	}
	courseID, err := pathInt(c, "course_id")
	if err != nil {
		respondError(c, apierr.Framework(err))
		return
	}
	if verr := checkPath(coursePath{TutorID: tutorID, CourseID: courseID}); verr != nil {
		respondError(c, verr)
		return
	}

	course, err := h.store.GetOne(c.Request.Context(), tutorID, courseID)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			respondError(c, apierr.NotFound("Course not found"))
			return
		}
		respondError(c, apierr.Database(err))
		return
	}
	ok(c, http.StatusOK, course)
}
