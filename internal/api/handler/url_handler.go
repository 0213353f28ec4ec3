package handler

import (
	"Reachboard/internal/api/dto"
	"Reachboard/internal/pkg/response"
	"Reachboard/internal/pkg/util"
	"Reachboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type URLHandler struct {
	urlSvc service.URLService
}

func NewURLHandler(urlSvc service.URLService) *URLHandler {
	return &URLHandler{
		urlSvc: urlSvc,
	}
}

// Upload 批量上传链接
func (h *URLHandler) Upload(c *gin.Context) {
	var req dto.UploadURLsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.urlSvc.UploadURLs(c.Request.Context(), req.URLs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 指定上传日的链接清单
func (h *URLHandler) List(c *gin.Context) {
	dateUploaded := c.Query("date_uploaded")
	sortBy := c.DefaultQuery("sort_by", "engagement_rate_desc")

	listing, err := h.urlSvc.ListURLs(c.Request.Context(), dateUploaded, sortBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, listing)
}

// Summary 平台分布汇总，date_uploaded 可选
func (h *URLHandler) Summary(c *gin.Context) {
	dateUploaded := c.Query("date_uploaded")

	summary, err := h.urlSvc.GetURLSummary(c.Request.Context(), dateUploaded)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

// Count 链接总数
func (h *URLHandler) Count(c *gin.Context) {
	count, err := h.urlSvc.CountURLs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, count)
}

// Analysis 单链接最新状态快照
func (h *URLHandler) Analysis(c *gin.Context) {
	urlIDStr := c.Param("url_id")
	urlID, err := strconv.ParseUint(urlIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	analysis, err := h.urlSvc.GetURLAnalysis(c.Request.Context(), urlID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analysis)
}

// EngagementHistory 单链接历史测量记录，按分析时间升序
func (h *URLHandler) EngagementHistory(c *gin.Context) {
	urlIDStr := c.Param("url_id")
	urlID, err := strconv.ParseUint(urlIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	history, err := h.urlSvc.GetEngagementHistory(c.Request.Context(), urlID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// Reanalyze 重置抓取标记并重新派发分析任务
func (h *URLHandler) Reanalyze(c *gin.Context) {
	urlIDStr := c.Param("url_id")
	urlID, err := strconv.ParseUint(urlIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.urlSvc.Reanalyze(c.Request.Context(), urlID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
