package service

import (
	"Reachboard/internal/api/dto"
	"Reachboard/internal/model"
	"Reachboard/internal/pkg/analytics"
	"Reachboard/internal/pkg/consts"
	"Reachboard/internal/pkg/kafka"
	"Reachboard/internal/pkg/redis"
	"Reachboard/internal/pkg/util"
	"Reachboard/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Dispatcher 下游派发接口，由 kafka.Producer 实现
type Dispatcher interface {
	Dispatch(ctx context.Context, items []kafka.Notification) error
}

type URLService interface {
	// UploadURLs 批量上传。单条失败不影响其余条目，
	// 成功条目按平台分组派发给下游分析队列
	UploadURLs(ctx context.Context, rawURLs []string) (*dto.URLUploadDTO, error)
	// ListURLs 指定上传日的链接清单，按链接去重后排序
	ListURLs(ctx context.Context, dateUploaded string, sortBy string) (*dto.URLListingDTO, error)
	// GetURLSummary 平台分布汇总，dateUploaded 为空时统计全量
	GetURLSummary(ctx context.Context, dateUploaded string) (*dto.URLSummaryDTO, error)
	CountURLs(ctx context.Context) (*dto.URLCountDTO, error)
	// GetURLAnalysis 单链接最新状态快照
	GetURLAnalysis(ctx context.Context, urlID uint64) (*dto.URLAnalysisDTO, error)
	// GetEngagementHistory 按分析时间升序返回全部测量记录
	GetEngagementHistory(ctx context.Context, urlID uint64) ([]dto.EngagementSnapshotDTO, error)
	// Reanalyze 重置抓取标记并重新派发，标记变更与入队同事务
	Reanalyze(ctx context.Context, urlID uint64) error
	// RedispatchUnfetched 重新派发所有存在未抓取记录的链接，返回派发条数
	RedispatchUnfetched(ctx context.Context) (int, error)
}

type urlServiceImpl struct {
	urlRepo    repository.URLRepo
	dispatcher Dispatcher
	cacheTTL   time.Duration
}

func NewURLService(urlRepo repository.URLRepo, dispatcher Dispatcher, cacheTTL time.Duration) URLService {
	return &urlServiceImpl{
		urlRepo:    urlRepo,
		dispatcher: dispatcher,
		cacheTTL:   cacheTTL,
	}
}

func (s *urlServiceImpl) UploadURLs(ctx context.Context, rawURLs []string) (*dto.URLUploadDTO, error) {
	res := &dto.URLUploadDTO{
		Success:    true,
		Message:    "链接上传完成",
		FailedURLs: make([]string, 0),
	}

	// 去空白去重，保持输入顺序
	seen := make(map[string]struct{}, len(rawURLs))
	unique := make([]string, 0, len(rawURLs))
	for _, raw := range rawURLs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		unique = append(unique, raw)
	}

	var notifications []kafka.Notification

	for _, raw := range unique {
		if !IsValidURL(raw) {
			res.FailedURLs = append(res.FailedURLs, raw)
			continue
		}

		existing, err := s.urlRepo.GetURLByRawURL(ctx, raw)
		if err != nil {
			res.FailedURLs = append(res.FailedURLs, fmt.Sprintf("%s (error: %s)", raw, err))
			continue
		}
		if existing != nil {
			res.FailedURLs = append(res.FailedURLs, fmt.Sprintf("%s (already exists)", raw))
			continue
		}

		platform := DetectPlatform(raw)
		url := &model.URL{
			URL:  raw,
			Type: model.TypeForPlatform(platform),
		}
		if err = s.urlRepo.CreateURLWithShell(ctx, url); err != nil {
			res.FailedURLs = append(res.FailedURLs, fmt.Sprintf("%s (error: %s)", raw, err))
			continue
		}

		notification := kafka.Notification{
			URLID:    url.ID,
			URL:      url.URL,
			Platform: platform,
		}
		if len(url.Posts) > 0 {
			notification.PostID = &url.Posts[0].ID
		}
		if len(url.Blogs) > 0 {
			notification.WebID = &url.Blogs[0].ID
		}
		notifications = append(notifications, notification)
		res.AddedCount++
	}

	if len(notifications) > 0 {
		// 派发失败不影响已提交的数据，只记日志
		if err := s.dispatcher.Dispatch(ctx, notifications); err != nil {
			log.ErrorContext(ctx, "dispatch uploaded urls failed", "count", len(notifications), "err", err)
		}
		invalidateSummaryCaches(ctx)
	}

	return res, nil
}

func (s *urlServiceImpl) ListURLs(ctx context.Context, dateUploaded string, sortBy string) (*dto.URLListingDTO, error) {
	if dateUploaded == "" {
		return nil, ErrDateInvalid
	}
	start, end, err := util.DayWindowIST(dateUploaded)
	if err != nil {
		return nil, ErrDateInvalid
	}

	urls, err := s.urlRepo.ListURLsCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rows := analytics.DeduplicateURLRows(toURLRows(urls))
	analytics.SortURLRows(rows, analytics.ParseSortBy(sortBy, analytics.SortEngagementRateDesc))

	res := &dto.URLListingDTO{URLs: make([]dto.URLDetailDTO, 0, len(rows))}
	for _, row := range rows {
		detail := dto.URLDetailDTO{
			ID:                row.URLID,
			URL:               row.URL,
			EngagementRate:    row.EngagementRate,
			Platform:          row.Platform,
			DateUploaded:      util.FormatDateIST(row.DateUploaded),
			IsFetched:         row.IsFetched,
			IsBrokenOrDeleted: row.IsBrokenOrDeleted,
		}
		if !row.DateAnalyzed.IsZero() {
			analyzed := util.FormatDateIST(row.DateAnalyzed)
			detail.DateAnalyzed = &analyzed
		}
		res.URLs = append(res.URLs, detail)
	}
	return res, nil
}

func (s *urlServiceImpl) GetURLSummary(ctx context.Context, dateUploaded string) (*dto.URLSummaryDTO, error) {
	// 只缓存不带日期过滤的全量汇总
	if dateUploaded == "" {
		if val, err := redis.GetValue(ctx, consts.URLSummaryKey); err == nil && val != "" {
			var res dto.URLSummaryDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	var urls []*model.URL
	var err error
	if dateUploaded != "" {
		var start, end time.Time
		start, end, err = util.DayWindowIST(dateUploaded)
		if err != nil {
			return nil, ErrDateInvalid
		}
		urls, err = s.urlRepo.ListURLsCreatedBetween(ctx, start, end)
	} else {
		urls, err = s.urlRepo.ListURLs(ctx)
	}
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeURLs(toURLRows(urls))

	res := &dto.URLSummaryDTO{
		TotalURLsCount:   summary.TotalURLs,
		FacebookPercent:  summary.PlatformPercent[model.PlatformFacebook],
		InstagramPercent: summary.PlatformPercent[model.PlatformInstagram],
		YoutubePercent:   summary.PlatformPercent[model.PlatformYoutube],
		WebsitePercent:   summary.PlatformPercent[model.PlatformWebsite],
	}
	if summary.Top != nil {
		res.TopPerformer = &dto.TopPerformingURLDTO{
			URLID:          summary.Top.URLID,
			URL:            summary.Top.URL,
			Platform:       summary.Top.Platform,
			EngagementRate: summary.Top.EngagementRate,
		}
	}

	if dateUploaded == "" {
		if body, err := json.Marshal(res); err == nil {
			_ = redis.SetWithExpiration(ctx, consts.URLSummaryKey, body, s.cacheTTL)
		}
	}

	return res, nil
}

func (s *urlServiceImpl) CountURLs(ctx context.Context) (*dto.URLCountDTO, error) {
	count, err := s.urlRepo.CountURLs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.URLCountDTO{TotalURLs: count}, nil
}

func (s *urlServiceImpl) GetURLAnalysis(ctx context.Context, urlID uint64) (*dto.URLAnalysisDTO, error) {
	url, err := s.urlRepo.GetURLWithMeasurements(ctx, urlID)
	if err != nil {
		return nil, err
	}
	if url == nil {
		return nil, ErrURLNotFound
	}

	res := &dto.URLAnalysisDTO{
		URLID:   url.ID,
		PostURL: url.URL,
		URLType: url.Type,
	}
	if url.Entity != nil {
		res.UserProfileName = &url.Entity.Fullname
		platform := url.Entity.Platform
		res.Platform = &platform
	}

	switch url.Type {
	case model.URLTypePost:
		ms := make([]analytics.Measurement, 0, len(url.Posts))
		for i := range url.Posts {
			ms = append(ms, analytics.FromPost(&url.Posts[i]))
		}
		if i, ok := analytics.SelectIndex(ms); ok {
			latest := &url.Posts[i]
			res.LatestLikes = &latest.Likes
			res.LatestComments = &latest.Comments
			res.LatestViews = latest.Views
			res.LatestEngagementRate = latest.EngagementRate
		}
	case model.URLTypeWebPost:
		ms := make([]analytics.Measurement, 0, len(url.Blogs))
		for i := range url.Blogs {
			ms = append(ms, analytics.FromBlog(&url.Blogs[i]))
		}
		if i, ok := analytics.SelectIndex(ms); ok {
			latest := &url.Blogs[i]
			res.TrafficCount = &latest.TrafficCount
			res.LatestEngagementRate = latest.EngagementRate
		}
	default:
		return nil, ErrURLTypeInvalid
	}

	return res, nil
}

func (s *urlServiceImpl) GetEngagementHistory(ctx context.Context, urlID uint64) ([]dto.EngagementSnapshotDTO, error) {
	url, err := s.urlRepo.GetURLWithMeasurements(ctx, urlID)
	if err != nil {
		return nil, err
	}
	if url == nil {
		return nil, ErrURLNotFound
	}

	snapshots := make([]dto.EngagementSnapshotDTO, 0, len(url.Posts)+len(url.Blogs))

	switch url.Type {
	case model.URLTypePost:
		for i := range url.Posts {
			p := &url.Posts[i]
			snapshots = append(snapshots, dto.EngagementSnapshotDTO{
				DateAnalyzed:   p.DateAnalyzed,
				Likes:          &p.Likes,
				Views:          p.Views,
				Comments:       &p.Comments,
				EngagementRate: p.EngagementRate,
			})
		}
	case model.URLTypeWebPost:
		for i := range url.Blogs {
			b := &url.Blogs[i]
			snapshots = append(snapshots, dto.EngagementSnapshotDTO{
				DateAnalyzed:   b.DateAnalyzed,
				TrafficCount:   &b.TrafficCount,
				EngagementRate: b.EngagementRate,
			})
		}
	default:
		return nil, ErrURLTypeInvalid
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].DateAnalyzed.Before(snapshots[j].DateAnalyzed)
	})

	return snapshots, nil
}

func (s *urlServiceImpl) Reanalyze(ctx context.Context, urlID uint64) error {
	url, err := s.urlRepo.GetURLWithMeasurements(ctx, urlID)
	if err != nil {
		return err
	}
	if url == nil {
		return ErrURLNotFound
	}

	// 标记重置与入队同事务：入队硬失败则回滚标记变更，
	// 入队成功后的投递问题不再回滚
	err = s.urlRepo.ResetFetchFlags(ctx, url, func() error {
		return s.dispatcher.Dispatch(ctx, []kafka.Notification{notificationFor(url)})
	})
	if err != nil {
		return err
	}

	invalidateSummaryCaches(ctx)
	return nil
}

func (s *urlServiceImpl) RedispatchUnfetched(ctx context.Context) (int, error) {
	urls, err := s.urlRepo.ListUnfetchedURLs(ctx)
	if err != nil {
		return 0, err
	}
	if len(urls) == 0 {
		return 0, nil
	}

	notifications := make([]kafka.Notification, 0, len(urls))
	for _, url := range urls {
		notifications = append(notifications, notificationFor(url))
	}
	if err = s.dispatcher.Dispatch(ctx, notifications); err != nil {
		return 0, err
	}
	return len(notifications), nil
}

// notificationFor 派发消息的平台优先取所属账号声明的平台，没有账号时按域名归类
func notificationFor(url *model.URL) kafka.Notification {
	platform := DetectPlatform(url.URL)
	if url.Entity != nil {
		platform = url.Entity.Platform
	}
	return kafka.Notification{
		URLID:    url.ID,
		URL:      url.URL,
		Platform: platform,
	}
}
