package metrics

import (
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// GormPlugin times every create, query, update, delete, row and raw
// statement and records it per table.
type GormPlugin struct {
	metrics *Metrics
}

func NewGormPlugin(m *Metrics) *GormPlugin {
	return &GormPlugin{metrics: m}
}

func (p *GormPlugin) Name() string {
	return "smartlock:metrics"
}

func (p *GormPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before("metrics:before_"+h.operation, p.before); err != nil {
			return err
		}
		if err := h.after("metrics:after_"+h.operation, p.after(h.operation)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormPlugin) before(db *gorm.DB) {
	db.InstanceSet(startTimeKey, time.Now())
}

func (p *GormPlugin) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startTimeKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}

		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		p.metrics.RecordDBOperation(operation, table, start)
	}
}
