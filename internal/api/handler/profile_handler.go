package handler

import (
	"Reachboard/internal/api/dto"
	"Reachboard/internal/pkg/consts"
	"Reachboard/internal/pkg/response"
	"Reachboard/internal/pkg/util"
	"Reachboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

// GetMetrics 获取全量账号聚合指标，支持平台过滤与排序
func (h *ProfileHandler) GetMetrics(c *gin.Context) {
	platform := c.DefaultQuery("platform", consts.PlatformFilterAll)
	sortBy := c.DefaultQuery("sort_by", "created_desc")

	metrics, err := h.profileSvc.GetProfileMetrics(c.Request.Context(), platform, sortBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

// GetAnalytics 获取单账号聚合与逐链接对比
func (h *ProfileHandler) GetAnalytics(c *gin.Context) {
	entityIDStr := c.Query("entity_id")
	entityID, err := strconv.ParseUint(entityIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	analyticsData, err := h.profileSvc.GetProfileAnalytics(c.Request.Context(), entityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analyticsData)
}

// Create 创建账号
func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.CreateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.profileSvc.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// Delete 删除账号及名下全部链接与测量记录
func (h *ProfileHandler) Delete(c *gin.Context) {
	entityIDStr := c.Param("entity_id")
	entityID, err := strconv.ParseUint(entityIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.profileSvc.DeleteProfile(c.Request.Context(), entityID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
