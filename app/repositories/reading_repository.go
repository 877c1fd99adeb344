// Package repositories 数据访问层
package repositories

import (
	"context"
	"time"

	"arcana/app/models/reading"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ReadingRepository 塔罗牌解读记录仓库，归属校验由调用方负责
type ReadingRepository struct {
	db *gorm.DB
}

// NewReadingRepository 创建仓库实例
func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Create 创建解读记录
func (r *ReadingRepository) Create(ctx context.Context, rd *reading.Reading) error {
	return r.db.WithContext(ctx).Create(rd).Error
}

// FindByID 获取单条记录，不存在时返回 gorm.ErrRecordNotFound
func (r *ReadingRepository) FindByID(ctx context.Context, id string) (*reading.Reading, error) {
	var rd reading.Reading
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rd).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

// ListByOwner 分页获取用户的历史记录，按创建时间倒序
// 总数与当前页并发查询
func (r *ReadingRepository) ListByOwner(ctx context.Context, userID string, page, limit int) ([]reading.Reading, int64, error) {
	readings := make([]reading.Reading, 0, limit)
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&reading.Reading{}).
			Where("user_id = ?", userID).
			Count(&total).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&readings).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return readings, total, nil
}

// DeleteByID 删除记录
func (r *ReadingRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&reading.Reading{}).Error
}

// CountByUser 用户的解读总数
func (r *ReadingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&reading.Reading{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ClaimSession 将匿名会话下的记录归属到注册用户，返回迁移的条数
// 跳过模型钩子，直接更新列
func (r *ReadingRepository) ClaimSession(ctx context.Context, sessionID, userID string) (int64, error) {
	if sessionID == "" || userID == "" {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&reading.Reading{}).
		Where("session_id = ? AND user_id IS NULL", sessionID).
		UpdateColumns(map[string]interface{}{
			"user_id":    userID,
			"session_id": nil,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
