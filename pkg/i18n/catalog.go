package i18n

import (
	"fmt"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
)

// Lang is a language selector. LangAuto resolves through a Detector.
type Lang string

const (
	LangAuto Lang = "auto"
	LangEN   Lang = "en"
	LangJP   Lang = "jp"
)

// Detector is the external locale collaborator consulted for LangAuto.
type Detector interface {
	Detect() Lang
}

// Resolve turns a selector into a concrete language. A nil detector or
// an unknown selector falls back to English.
func Resolve(sel Lang, d Detector) Lang {
	switch sel {
	case LangEN, LangJP:
		return sel
	}
	if d != nil {
		if lang := d.Detect(); lang == LangEN || lang == LangJP {
			return lang
		}
	}
	return LangEN
}

// Kind names one renderable message.
type Kind string

const (
	KindOfflineWarn      Kind = "offline_warn"
	KindOfflineAlert     Kind = "offline_alert"
	KindAnomalyRepeated  Kind = "anomaly_repeated"
	KindAnomalyPersisted Kind = "anomaly_persisted"

	KindNarrativeSpike   Kind = "narrative_spike"
	KindNarrativeRise    Kind = "narrative_rise"
	KindNarrativeFall    Kind = "narrative_fall"
	KindNarrativeSteady  Kind = "narrative_steady"
	KindNarrativeSummary Kind = "narrative_summary"
	KindNarrativeNoData  Kind = "narrative_nodata"
)

// Params carries every value a message template may reference.
type Params struct {
	Device        string
	Signal        models.Signal
	Delta         float64
	Value         float64
	Min           float64
	Max           float64
	Mean          float64
	Seconds       int64
	Minutes       int64
	WindowMinutes int64
}

var signalLabels = map[Lang]map[models.Signal]string{
	LangEN: {
		models.SignalTemperature: "temperature",
		models.SignalHumidity:    "humidity",
		models.SignalPressure:    "pressure",
		models.SignalLight:       "light",
	},
	LangJP: {
		models.SignalTemperature: "温度",
		models.SignalHumidity:    "湿度",
		models.SignalPressure:    "気圧",
		models.SignalLight:       "照度",
	},
}

// SignalLabel returns the localized display name of a signal.
func SignalLabel(lang Lang, sig models.Signal) string {
	if labels, ok := signalLabels[lang]; ok {
		if label, ok := labels[sig]; ok {
			return label
		}
	}
	return string(sig)
}

var catalog = map[Lang]map[Kind]func(Params) string{
	LangEN: {
		KindOfflineWarn: func(p Params) string {
			return fmt.Sprintf("No data received from %s for %d seconds.", p.Device, p.Seconds)
		},
		KindOfflineAlert: func(p Params) string {
			return fmt.Sprintf("%s has been offline for %d minutes. Check power and network.", p.Device, p.Minutes)
		},
		KindAnomalyRepeated: func(p Params) string {
			return fmt.Sprintf("%s: repeated %s anomalies detected (%+.1f%s).",
				p.Device, SignalLabel(LangEN, p.Signal), p.Delta, p.Signal.Unit())
		},
		KindAnomalyPersisted: func(p Params) string {
			return fmt.Sprintf("%s: %s has stayed abnormal for %d minutes (%+.1f%s).",
				p.Device, SignalLabel(LangEN, p.Signal), p.Minutes, p.Delta, p.Signal.Unit())
		},
		KindNarrativeSpike: func(p Params) string {
			return fmt.Sprintf("%s spiked to %.1f%s just now.",
				titled(SignalLabel(LangEN, p.Signal)), p.Value, p.Signal.Unit())
		},
		KindNarrativeRise: func(p Params) string {
			return fmt.Sprintf("%s rose %.1f%s over the last %d minutes.",
				titled(SignalLabel(LangEN, p.Signal)), p.Delta, p.Signal.Unit(), p.WindowMinutes)
		},
		KindNarrativeFall: func(p Params) string {
			return fmt.Sprintf("%s fell %.1f%s over the last %d minutes.",
				titled(SignalLabel(LangEN, p.Signal)), -p.Delta, p.Signal.Unit(), p.WindowMinutes)
		},
		KindNarrativeSteady: func(p Params) string {
			return fmt.Sprintf("%s is steady around %.1f%s.",
				titled(SignalLabel(LangEN, p.Signal)), p.Value, p.Signal.Unit())
		},
		KindNarrativeSummary: func(p Params) string {
			return fmt.Sprintf("%s ranged %.1f-%.1f%s (avg %.1f%s).",
				titled(SignalLabel(LangEN, p.Signal)), p.Min, p.Max, p.Signal.Unit(), p.Mean, p.Signal.Unit())
		},
		KindNarrativeNoData: func(p Params) string {
			return fmt.Sprintf("No data available for %s.", p.Device)
		},
	},
	LangJP: {
		KindOfflineWarn: func(p Params) string {
			return fmt.Sprintf("%sから%d秒間データが届いていません。", p.Device, p.Seconds)
		},
		KindOfflineAlert: func(p Params) string {
			return fmt.Sprintf("%sは%d分間オフラインです。電源とネットワークを確認してください。", p.Device, p.Minutes)
		},
		KindAnomalyRepeated: func(p Params) string {
			return fmt.Sprintf("%s: %sの異常変動を繰り返し検出しました（%+.1f%s）。",
				p.Device, SignalLabel(LangJP, p.Signal), p.Delta, p.Signal.Unit())
		},
		KindAnomalyPersisted: func(p Params) string {
			return fmt.Sprintf("%s: %sの異常が%d分間継続しています（%+.1f%s）。",
				p.Device, SignalLabel(LangJP, p.Signal), p.Minutes, p.Delta, p.Signal.Unit())
		},
		KindNarrativeSpike: func(p Params) string {
			return fmt.Sprintf("%sが%.1f%sへ急変しました。", SignalLabel(LangJP, p.Signal), p.Value, p.Signal.Unit())
		},
		KindNarrativeRise: func(p Params) string {
			return fmt.Sprintf("%sは直近%d分で%.1f%s上昇しました。",
				SignalLabel(LangJP, p.Signal), p.WindowMinutes, p.Delta, p.Signal.Unit())
		},
		KindNarrativeFall: func(p Params) string {
			return fmt.Sprintf("%sは直近%d分で%.1f%s低下しました。",
				SignalLabel(LangJP, p.Signal), p.WindowMinutes, -p.Delta, p.Signal.Unit())
		},
		KindNarrativeSteady: func(p Params) string {
			return fmt.Sprintf("%sは%.1f%s前後で安定しています。", SignalLabel(LangJP, p.Signal), p.Value, p.Signal.Unit())
		},
		KindNarrativeSummary: func(p Params) string {
			return fmt.Sprintf("%sは%.1f〜%.1f%s（平均%.1f%s）でした。",
				SignalLabel(LangJP, p.Signal), p.Min, p.Max, p.Signal.Unit(), p.Mean, p.Signal.Unit())
		},
		KindNarrativeNoData: func(p Params) string {
			return fmt.Sprintf("%sのデータがありません。", p.Device)
		},
	},
}

// Kinds returns every message kind, for coverage checks.
func Kinds() []Kind {
	return []Kind{
		KindOfflineWarn, KindOfflineAlert, KindAnomalyRepeated, KindAnomalyPersisted,
		KindNarrativeSpike, KindNarrativeRise, KindNarrativeFall,
		KindNarrativeSteady, KindNarrativeSummary, KindNarrativeNoData,
	}
}

// Render formats one message. Unknown selectors render in English so a
// bad input can never make a notification unprintable.
func Render(lang Lang, kind Kind, p Params) string {
	messages, ok := catalog[lang]
	if !ok {
		messages = catalog[LangEN]
	}
	format, ok := messages[kind]
	if !ok {
		return ""
	}
	return format(p)
}

func titled(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
