package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"aquamon-api/internal/model"
	"aquamon-api/internal/threshold/repository"

	goredis "github.com/redis/go-redis/v9"
)

func settingKey(metricName string) string {
	return fmt.Sprintf("threshold:setting:%s", metricName)
}

func (c *implCache) GetSetting(ctx context.Context, metricName string) (model.ThresholdSetting, error) {
	raw, err := c.client.Get(ctx, settingKey(metricName)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return model.ThresholdSetting{}, repository.ErrCacheMiss
		}
		c.l.Errorf(ctx, "internal.threshold.repository.redis.GetSetting.Get: %v", err)
		return model.ThresholdSetting{}, err
	}

	var setting model.ThresholdSetting
	if err := json.Unmarshal(raw, &setting); err != nil {
		c.l.Errorf(ctx, "internal.threshold.repository.redis.GetSetting.Unmarshal: %v", err)
		return model.ThresholdSetting{}, err
	}

	return setting, nil
}

func (c *implCache) SetSetting(ctx context.Context, setting model.ThresholdSetting) error {
	raw, err := json.Marshal(setting)
	if err != nil {
		c.l.Errorf(ctx, "internal.threshold.repository.redis.SetSetting.Marshal: %v", err)
		return err
	}

	if err := c.client.Set(ctx, settingKey(setting.MetricName), raw, c.ttl).Err(); err != nil {
		c.l.Errorf(ctx, "internal.threshold.repository.redis.SetSetting.Set: %v", err)
		return err
	}

	return nil
}

func (c *implCache) DeleteSetting(ctx context.Context, metricName string) error {
	if err := c.client.Del(ctx, settingKey(metricName)).Err(); err != nil {
		c.l.Errorf(ctx, "internal.threshold.repository.redis.DeleteSetting.Del: %v", err)
		return err
	}
	return nil
}
