package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"slipscan/models"
	"slipscan/pkg/ocr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func setupRoutes(r *gin.Engine) {
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/me", meHandler)
	authGroup.POST("/slips", uploadSlipHandler)
	authGroup.GET("/slips", listSlipsHandler)
	authGroup.GET("/slips/:id", getSlipHandler)
	authGroup.GET("/lineups", listLineupsHandler)
	authGroup.GET("/lineups/summary", lineupSummaryHandler)
	authGroup.POST("/lineups/:id/confirm", confirmLineupHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		c.Set("username", username)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func meHandler(c *gin.Context) {
	usernameVal, _ := c.Get("username")
	if usernameVal == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing username"})
		return
	}
	username := usernameVal.(string)
	c.JSON(http.StatusOK, gin.H{"username": username})
}

// getUserFromContext fetches the currently authenticated user using the username set by jwtAuthMiddleware
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	unameVal, _ := c.Get("username")
	if unameVal == nil {
		return nil, false
	}
	uname := unameVal.(string)
	var user models.User
	if err := db.Where("username = ?", uname).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := RegisterUser(req.Username, req.Password); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	// Resolve role name from RoleID (we only store role_id).
	roleName := ""
	if user.RoleID != nil {
		var r models.Role
		if err := db.First(&r, *user.RoleID).Error; err == nil {
			roleName = r.Name
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"role":     roleName,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": tokenString})
}

// uploadSlipHandler accepts one slip screenshot, stores it, runs the scan
// pipeline and returns the draft lineup together with its validation
// report. Pipeline aborts (undecodable image, engine failure) are recorded
// on the upload row and reported as 422, never as silent drops.
func uploadSlipHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 10*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}
	baseDir := uploadBaseDir()
	relPath := filepath.Join(user.Username, filepath.Base(file.Filename))
	fullPath := filepath.Join(baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	up := models.SlipUpload{
		UserID:      user.ID,
		FileName:    file.Filename,
		StorePath:   relPath,
		ContentType: file.Header.Get("Content-Type"),
	}

	lineup, report, err := scanPipeline.ScanImage(fullPath)
	if err != nil {
		up.Failed = true
		up.FailedReason = err.Error()
		if dbErr := db.Create(&up).Error; dbErr != nil {
			log.Printf("slips: failed to record failed upload %s: %v", file.Filename, dbErr)
		}
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ocr.ErrDecode) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "upload_id": up.ID})
		return
	}

	lineup.UserID = user.ID
	if err := db.Create(lineup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
		return
	}
	up.LineupID = &lineup.ID
	if err := db.Create(&up).Error; err != nil {
		log.Printf("slips: failed to record upload %s: %v", file.Filename, err)
	}
	c.JSON(http.StatusOK, gin.H{
		"upload_id": up.ID,
		"lineup":    lineup,
		"report":    report,
	})
}

// listSlipsHandler returns uploads; admin sees all, user only their own.
func listSlipsHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var uploads []models.SlipUpload
	q := db.Model(&models.SlipUpload{})
	if role != "administrator" {
		q = q.Where("user_id = ?", user.ID)
	}
	if err := q.Order("id desc").Limit(100).Find(&uploads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// getSlipHandler returns a single upload if admin or owner.
func getSlipHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id := c.Param("id")
	var up models.SlipUpload
	if err := db.First(&up, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if role != "administrator" && up.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, up)
}

// listLineupsHandler lists recent lineups for the authenticated user (admin sees all)
func listLineupsHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var items []models.Lineup
	q := db.Model(&models.Lineup{}).Preload("Players")
	if role != "administrator" {
		q = q.Where("user_id = ?", user.ID)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}
	if err := q.Order("id desc").Limit(200).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// lineupSummaryHandler returns stake and payout totals grouped by status.
func lineupSummaryHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	type Result struct {
		Status      string  `json:"status"`
		Count       int64   `json:"count"`
		TotalEntry  float64 `json:"totalEntry"`
		TotalPayout float64 `json:"totalPayout"`
	}
	var results []Result
	q := db.Model(&models.Lineup{})
	if role != "administrator" {
		q = q.Where("user_id = ?", user.ID)
	}
	rows, err := q.Select("status, count(*) as count, sum(entry_amount) as total_entry, coalesce(sum(actual_payout), 0) as total_payout").Group("status").Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	defer rows.Close()
	for rows.Next() {
		var r Result
		rows.Scan(&r.Status, &r.Count, &r.TotalEntry, &r.TotalPayout)
		results = append(results, r)
	}
	c.JSON(http.StatusOK, results)
}

// confirmLineupHandler accepts the reviewed lineup fields and marks the
// draft authoritative. Only the owner (or admin) may confirm; the body may
// carry human corrections to any extracted field.
func confirmLineupHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id := c.Param("id")
	var lineup models.Lineup
	if err := db.Preload("Players").First(&lineup, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if role != "administrator" && lineup.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if lineup.Confirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "lineup already confirmed"})
		return
	}
	var req struct {
		Type            *string         `json:"type"`
		EntryAmount     *float64        `json:"entryAmount"`
		PotentialPayout *float64        `json:"potentialPayout"`
		Players         []models.Player `json:"players"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != nil {
		lineup.Type = *req.Type
	}
	if req.EntryAmount != nil {
		lineup.EntryAmount = *req.EntryAmount
	}
	if req.PotentialPayout != nil {
		lineup.PotentialPayout = *req.PotentialPayout
	}
	if len(req.Players) > 0 {
		// Replace the pick set wholesale; slot order follows body order.
		if err := db.Where("lineup_id = ?", lineup.ID).Delete(&models.Player{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to replace players"})
			return
		}
		for i := range req.Players {
			req.Players[i].ID = 0
			req.Players[i].LineupID = lineup.ID
			req.Players[i].Slot = i
		}
		lineup.Players = req.Players
	}
	lineup.Confirmed = true
	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&lineup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, lineup)
}
