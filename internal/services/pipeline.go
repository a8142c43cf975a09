package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"weather-mailer/internal/assets"
	"weather-mailer/internal/config"
	"weather-mailer/internal/forecast"
	"weather-mailer/internal/mailer"
	"weather-mailer/internal/notify"
	"weather-mailer/internal/recommend"
	"weather-mailer/pkg/client"
)

// WeatherClient supplies the two raw payloads the normalizer consumes.
type WeatherClient interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (*client.CurrentConditionsResponse, error)
	Forecast(ctx context.Context, lat, lon float64) (*client.ForecastResponse, error)
}

// MailSender delivers the rendered notification.
type MailSender interface {
	Send(ctx context.Context, from, to string, msg notify.Message, images []mailer.InlineImage) error
}

// Pipeline runs the whole job once: fetch, normalize, derive, render, send.
// Strictly sequential; every stage consumes the previous stage's immutable
// output.
type Pipeline struct {
	cfg     *config.Config
	weather WeatherClient
	mail    MailSender
	icons   *assets.Store
	logger  *zap.Logger
	now     func() time.Time
}

func NewPipeline(cfg *config.Config, logger *zap.Logger) *Pipeline {
	clientConfig := client.ClientConfig{
		Timeout:        cfg.FetchTimeout,
		BreakerTimeout: 30 * time.Second,
	}

	return &Pipeline{
		cfg:     cfg,
		weather: client.NewOpenWeatherClient(cfg.Weather.APIKey, cfg.Weather.Units, clientConfig, logger),
		mail:    mailer.New(cfg.Mail.SMTPServer, cfg.Mail.SMTPPort, cfg.Mail.SenderEmail, cfg.Mail.SenderPassword, logger),
		icons:   assets.NewStore(cfg.Assets.IconDir),
		logger:  logger,
		now:     time.Now,
	}
}

// Run produces at most one notification. Any error it returns is fatal for
// the invocation; the external scheduler is responsible for the next cycle.
func (p *Pipeline) Run(ctx context.Context) error {
	lat, lon := p.cfg.Weather.Latitude, p.cfg.Weather.Longitude

	p.logger.Info("Fetching weather for coordinates",
		zap.Float64("latitude", lat),
		zap.Float64("longitude", lon))

	// Normalization has no partial-data mode: both payloads are required.
	current, err := p.weather.CurrentConditions(ctx, lat, lon)
	if err != nil {
		return err
	}

	fc, err := p.weather.Forecast(ctx, lat, lon)
	if err != nil {
		return err
	}

	obs, err := forecast.Normalize(current, fc, forecast.Units(p.cfg.Weather.Units))
	if err != nil {
		return err
	}

	recs := recommend.Build(obs)
	sel := assets.Select(obs.ConditionDescription, obs.WindSpeedKmh)
	msg := notify.Render(obs, recs, sel, p.now())

	p.logger.Info("Notification prepared",
		zap.String("conditions", obs.ConditionDescription),
		zap.Int("temp_high", obs.TempHigh),
		zap.Int("temp_low", obs.TempLow),
		zap.Int("recommendations", len(recs)),
		zap.String("primary_icon", string(sel.Primary)))

	images := p.loadImages(sel)

	return p.mail.Send(ctx, p.cfg.Mail.SenderEmail, p.cfg.Mail.RecipientEmail, msg, images)
}

// loadImages resolves the selected icons to inline image blobs. A missing
// asset is downgraded to a warning and the image is omitted; the
// notification is still sent.
func (p *Pipeline) loadImages(sel assets.Selection) []mailer.InlineImage {
	var images []mailer.InlineImage

	if data, err := p.icons.Load(sel.Primary); err != nil {
		p.warnAssetMissing(err)
	} else {
		images = append(images, mailer.InlineImage{CID: notify.PrimaryIconCID, Data: data})
	}

	if sel.Wind != nil {
		if data, err := p.icons.Load(*sel.Wind); err != nil {
			p.warnAssetMissing(err)
		} else {
			images = append(images, mailer.InlineImage{CID: notify.WindIconCID, Data: data})
		}
	}

	return images
}

func (p *Pipeline) warnAssetMissing(err error) {
	var assetErr *assets.AssetUnavailableError
	if errors.As(err, &assetErr) {
		p.logger.Warn("Icon asset unavailable, sending without it",
			zap.String("icon", string(assetErr.Icon)),
			zap.Error(assetErr.Err))
		return
	}
	p.logger.Warn("Icon load failed, sending without it", zap.Error(err))
}
