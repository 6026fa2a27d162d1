package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "page_renders_total",
		Help:      "Pages rendered, by theme variant.",
	}, []string{"theme"})

	themeToggles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "theme_toggles_total",
		Help:      "Theme toggle events received.",
	})
)
