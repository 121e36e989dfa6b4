package di

import (
	"fmt"

	domrepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/handler/api"
	mid "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/middleware"
	internalrepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/alphavantage"
	icache "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/cache"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/newsapi"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/sentiment"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/explain"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/present"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/scoring"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/usecase"
	pkgcache "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/cache"
	pkgch "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/clickhouse"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/config"
	xhttp "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/http"
	pkgkafka "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/kafka"
	applogger "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/metrics"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/queue"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := "info"
	format := "json"
	if cfg.Environment == "development" {
		level = "debug"
		format = "console"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: "stdout"})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the company record cache. Redis-backed layered cache
// when configured, in-memory otherwise.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}
	rc, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
		pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(rc), nil
}

// ProvideFinancialSource creates the fundamentals provider.
func ProvideFinancialSource(cfg *config.Config) domrepo.FinancialSource {
	p := cfg.Providers.AlphaVantage
	return alphavantage.New(p.APIKey, p.BaseURL, p.Timeout)
}

// ProvideNewsSource creates the headlines provider.
func ProvideNewsSource(cfg *config.Config) domrepo.NewsSource {
	p := cfg.Providers.NewsAPI
	return newsapi.New(p.APIKey, p.BaseURL, p.MaxHeadlines, p.Timeout, sentiment.NewAnalyzer())
}

// ProvideCollector creates the data collector.
func ProvideCollector(cfg *config.Config, fin domrepo.FinancialSource, news domrepo.NewsSource, c pkgcache.Service, m domrepo.Metrics, l *applogger.Logger) *usecase.Collector {
	collector := usecase.NewCollector(fin, news, c, m, l)
	collector.SetTTL(cfg.Cache.RecordTTL)
	return collector
}

// ProvideModel creates the scoring model with the configured backend.
func ProvideModel(cfg *config.Config) (*scoring.Model, error) {
	var (
		reg scoring.Regressor
		err error
	)
	switch cfg.Model.Backend {
	case "lightgbm":
		reg, err = scoring.LoadLightGBM(cfg.Model.Path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
	default:
		reg = scoring.NewHeuristic()
	}
	return scoring.NewModel(reg)
}

// ProvideExplainer creates the attribution engine.
func ProvideExplainer(model *scoring.Model) *explain.Explainer {
	return explain.New(model)
}

// ProvideHistoryStore creates the score history store, or a noop when
// ClickHouse is disabled.
func ProvideHistoryStore(cfg *config.Config, l *applogger.Logger) (domrepo.HistoryStore, error) {
	if !cfg.ClickHouse.Enabled {
		return internalrepo.NoopHistoryStore{}, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return internalrepo.NewCHScoreHistory(client, l)
}

// ProvideEventPublisher creates the Kafka score publisher, or a noop when
// Kafka is disabled.
func ProvideEventPublisher(cfg *config.Config) (domrepo.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopPublisher{}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.BatchSize),
		pkgkafka.WithBatchTimeout(cfg.Kafka.BatchTimeout),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaScorePublisher(producer, cfg.Kafka.Topic), nil
}

// ProvidePipeline creates the async score fan-out.
func ProvidePipeline(history domrepo.HistoryStore, publisher domrepo.EventPublisher, m domrepo.Metrics) *mid.ScorePipeline {
	return mid.NewScorePipeline(history, publisher, m)
}

// ProvideScoreCardUsecase creates the scoring orchestrator.
func ProvideScoreCardUsecase(
	collector *usecase.Collector,
	model *scoring.Model,
	explainer *explain.Explainer,
	pipeline *mid.ScorePipeline,
	m domrepo.Metrics,
	l *applogger.Logger,
) *usecase.ScoreCardUsecase {
	return usecase.NewScoreCardUsecase(collector, model, explainer, pipeline, m, l)
}

// ProvideCompareUsecase creates the comparison orchestrator.
func ProvideCompareUsecase(scorecard *usecase.ScoreCardUsecase, l *applogger.Logger) *usecase.CompareUsecase {
	return usecase.NewCompareUsecase(scorecard, l)
}

// ProvideMapper creates the chart-bundle mapper.
func ProvideMapper(history domrepo.HistoryStore, l *applogger.Logger) *present.Mapper {
	return present.NewMapper(present.NewTrendBuilder(history, l))
}

// ProvideQueue creates the in-process worker queue with the refresh job
// registered.
func ProvideQueue(cfg *config.Config, scorecard *usecase.ScoreCardUsecase, l *applogger.Logger) (*queue.MemoryQueue, error) {
	q := queue.NewMemoryQueue(l, &queue.QueueConfig{
		Workers:    cfg.Watchlist.Workers,
		QueueSize:  2 * len(cfg.Watchlist.Tickers),
		RetryLimit: 2,
	})
	if err := q.RegisterJob(usecase.NewRefreshJob(scorecard, l)); err != nil {
		return nil, err
	}
	return q, nil
}

// ProvideRefresher creates the watchlist refresher.
func ProvideRefresher(cfg *config.Config, q *queue.MemoryQueue, l *applogger.Logger) *usecase.Refresher {
	return usecase.NewRefresher(cfg.Watchlist.Tickers, cfg.Watchlist.Interval, q, l)
}

// ProvideHTTPHandler wires the Echo route set. Dashboard responses cache in
// Redis when it is configured, in process memory otherwise.
func ProvideHTTPHandler(
	cfg *config.Config,
	l *applogger.Logger,
	scorecard *usecase.ScoreCardUsecase,
	compare *usecase.CompareUsecase,
	mapper *present.Mapper,
) xhttp.Handler {
	scores := api.NewScoresEchoHandler(l, scorecard, compare, mapper)
	if cfg.Cache.Redis.Enabled {
		scores.SetCache(icache.NewRedisCache(icache.RedisConfig{
			Addr:     fmt.Sprintf("%s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}))
	} else {
		scores.SetCache(icache.NewTTLCache())
	}
	live := api.NewLiveHandler(l, scorecard)
	return api.NewRoutes(scores, live)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	pipeline *mid.ScorePipeline,
	q *queue.MemoryQueue,
	refresher *usecase.Refresher,
	history domrepo.HistoryStore,
	publisher domrepo.EventPublisher,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, l, pipeline, q, refresher, history, publisher, handler)
}
