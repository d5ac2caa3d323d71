package controllers

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"tablebook/models"
	"tablebook/storage"
)

// The restaurant aggregate is the one piece of shared mutable state. Every
// handler takes sheetMu for the whole of its critical section and never does
// I/O while holding it: snapshots are encoded under the lock and written out
// after it is released.
var (
	restaurant *models.Restaurant
	store      *storage.Store
	sheetMu    sync.Mutex
	now        = time.Now
)

var validate = validator.New()

type Env struct {
	Restaurant *models.Restaurant
	Store      *storage.Store
	Now        func() time.Time
}

func Setup(env Env) {
	restaurant = env.Restaurant
	store = env.Store
	if env.Now != nil {
		now = env.Now
	} else {
		now = time.Now
	}
}

// snapshotLocked captures everything the post-commit work needs. Call with
// sheetMu held.
func snapshotLocked() ([]byte, []gin.H) {
	return storage.Encode(restaurant), tableViewsLocked()
}

// commit persists the snapshot and pushes the fresh table state to stream
// subscribers. Call after releasing sheetMu.
func commit(snapshot []byte, tables []gin.H) {
	if store != nil {
		if err := store.Save(snapshot); err != nil {
			log.Println("error saving booking data:", err)
		}
	}
	notifyTables(tables)
}

func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrNoTableAvailable),
		errors.Is(err, models.ErrTableUnavailable),
		errors.Is(err, models.ErrInvalidTransition):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
