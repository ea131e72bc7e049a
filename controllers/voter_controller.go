package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sudhev0011/VoterMngmtServer/models"
	"github.com/sudhev0011/VoterMngmtServer/store"
)

type VoterController struct {
	voters *store.VoterStore
}

func NewVoterController(voters *store.VoterStore) *VoterController {
	return &VoterController{voters: voters}
}

func (ctl *VoterController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	voters, pagination, err := ctl.voters.List(store.ListParams{
		SortBy:    c.DefaultQuery("sortBy", "serialNo"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
	})
	if err != nil {
		slog.Error("voter listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": voters, "pagination": pagination})
}

func (ctl *VoterController) Create(c *gin.Context) {
	var input struct {
		SerialNo     int    `json:"serialNo" binding:"required"`
		Name         string `json:"name" binding:"required"`
		GuardianName string `json:"guardianName" binding:"required"`
		HouseNo      string `json:"houseNo" binding:"required"`
		HouseName    string `json:"houseName" binding:"required"`
		GenderAge    string `json:"genderAge" binding:"required"`
		IDCardNo     string `json:"idCardNo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	voter := models.Voter{
		SerialNo:     input.SerialNo,
		Name:         input.Name,
		GuardianName: input.GuardianName,
		HouseNo:      input.HouseNo,
		HouseName:    input.HouseName,
		GenderAge:    input.GenderAge,
		IDCardNo:     input.IDCardNo,
	}
	if err := ctl.voters.Create(&voter); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Voter with this serial or ID card number already exists"})
			return
		}
		slog.Error("voter creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, voter)
}

func (ctl *VoterController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Voter not found"})
		return
	}

	var input struct {
		SerialNo     *int    `json:"serialNo"`
		Name         *string `json:"name"`
		GuardianName *string `json:"guardianName"`
		HouseNo      *string `json:"houseNo"`
		HouseName    *string `json:"houseName"`
		GenderAge    *string `json:"genderAge"`
		IDCardNo     *string `json:"idCardNo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Only fields present in the body are touched.
	fields := map[string]interface{}{}
	if input.SerialNo != nil {
		fields["serial_no"] = *input.SerialNo
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.GuardianName != nil {
		fields["guardian_name"] = *input.GuardianName
	}
	if input.HouseNo != nil {
		fields["house_no"] = *input.HouseNo
	}
	if input.HouseName != nil {
		fields["house_name"] = *input.HouseName
	}
	if input.GenderAge != nil {
		fields["gender_age"] = *input.GenderAge
	}
	if input.IDCardNo != nil {
		fields["id_card_no"] = *input.IDCardNo
	}

	voter, err := ctl.voters.Update(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Voter not found"})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Voter with this serial or ID card number already exists"})
		default:
			slog.Error("voter update failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, voter)
}

func (ctl *VoterController) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Voter not found"})
		return
	}

	if err := ctl.voters.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Voter not found"})
			return
		}
		slog.Error("voter deletion failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voter deleted"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
