package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/movilidad-dev/movilidad/db"
	"github.com/movilidad-dev/movilidad/internal/cache"
	"github.com/movilidad-dev/movilidad/internal/models"
	"github.com/movilidad-dev/movilidad/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	leaderboardSize     = 15
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 30 * time.Second

	// scoreDateLayout matches what the mobile client renders verbatim.
	scoreDateLayout = "02/01 15:04"
)

type SaveScoreRequest struct {
	UserName   string `json:"userName" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Points     int    `json:"points"`
}

// Store caches leaderboard reads. Set during startup; a nil cache means
// every read goes to the database.
var Store *cache.Cache

func SaveScore(ctx *gin.Context) {
	var req SaveScoreRequest

	if err := ctx.BindJSON(&req); err != nil {
		logrus.Debugf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	score := models.Score{
		UserName:   req.UserName,
		Difficulty: req.Difficulty,
		Points:     req.Points,
		Date:       time.Now().Format(scoreDateLayout),
	}

	if err := db.DB.Create(&score).Error; err != nil {
		logrus.Errorf("Failed to save score: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := Store.Delete(context.Background(), leaderboardCacheKey); err != nil {
		logrus.Warnf("Failed to invalidate leaderboard cache: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"score_id":   score.ID,
		"user_name":  score.UserName,
		"difficulty": score.Difficulty,
		"points":     score.Points,
	}).Info("Score saved")

	ctx.JSON(http.StatusOK, gin.H{"msg": "Score saved"})
}

func GetLeaderboard(ctx *gin.Context) {
	cacheCtx := context.Background()

	var entries []types.ScoreResponse

	found, err := Store.Get(cacheCtx, leaderboardCacheKey, &entries)
	if err != nil {
		logrus.Warnf("Failed to read leaderboard cache: %v", err)
	}

	if found {
		ctx.JSON(http.StatusOK, entries)
		return
	}

	var scores []models.Score

	// Ties on points go to the earlier submission; id makes the order
	// total when two rows share a timestamp.
	if err := db.DB.
		Order("points DESC").
		Order("created_at ASC").
		Order("id ASC").
		Limit(leaderboardSize).
		Find(&scores).Error; err != nil {
		logrus.Errorf("Failed to fetch leaderboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	entries = make([]types.ScoreResponse, len(scores))

	for i, s := range scores {
		entries[i] = types.ScoreResponse{
			ID:         s.ID,
			UserName:   s.UserName,
			Difficulty: s.Difficulty,
			Points:     s.Points,
			Date:       s.Date,
		}
	}

	if err := Store.Set(cacheCtx, leaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
		logrus.Warnf("Failed to cache leaderboard: %v", err)
	}

	ctx.JSON(http.StatusOK, entries)
}
