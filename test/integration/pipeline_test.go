// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/glyphmc/glyph/internal/config"
	"github.com/glyphmc/glyph/pkg/channel"
	"github.com/glyphmc/glyph/pkg/dispatch"
	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
	"github.com/glyphmc/glyph/pkg/placeholder"
)

var _ = Describe("Message pipeline", func() {
	var (
		pc    *channel.Context
		coord *dispatch.Coordinator
		steve *host.FakeRecipient
		alex  *host.FakeRecipient
	)

	BeforeEach(func() {
		pc = &channel.Context{
			Placeholders: placeholder.NewRegistry(),
			Config:       config.Default(),
			Scheduler:    &host.FakeScheduler{},
			BossBars:     &host.FakeBossBarFactory{},
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
		var err error
		coord, err = dispatch.New(channel.NewRegistry(), pc)
		Expect(err).NotTo(HaveOccurred())

		steve = host.NewFakeRecipient("Steve")
		alex = host.NewFakeRecipient("Alex")
	})

	recipients := func() []host.Recipient {
		return []host.Recipient{steve, alex}
	}

	Describe("chat delivery", func() {
		It("compiles markup and resolves placeholders per recipient", func() {
			res := coord.Dispatch(context.Background(),
				recipients(),
				`&aWelcome {player}! <hover:"Teleport home"|run:"/home {player}">Go home</text>`)
			Expect(res.SentToAny).To(BeTrue())

			Expect(steve.Messages).To(HaveLen(1))
			comps := steve.Messages[0]
			Expect(comps).To(HaveLen(2))
			Expect(comps[0].Text).To(Equal("&aWelcome Steve! "))
			Expect(comps[1].Text).To(Equal("&aGo home"))
			Expect(comps[1].Click.Kind).To(Equal(markup.ClickRunCommand))
			Expect(comps[1].Click.Argument).To(Equal("/home Steve"))
			Expect(comps[1].Hover.Lines).To(Equal([]string{"Teleport home"}))

			Expect(alex.Messages[0][1].Click.Argument).To(Equal("/home Alex"))
		})

		It("makes bare URLs clickable", func() {
			coord.Dispatch(context.Background(), recipients(), "docs at https://glyphmc.dev/guide")

			comps := steve.Messages[0]
			Expect(comps).To(HaveLen(2))
			Expect(comps[1].Text).To(Equal("https://glyphmc.dev/guide"))
			Expect(comps[1].Click.Kind).To(Equal(markup.ClickOpenURL))
		})

		It("emits blank lines for space markers", func() {
			coord.Dispatch(context.Background(), recipients(), "spaced<add_space:2>")
			Expect(steve.Messages).To(HaveLen(3))
			Expect(steve.Messages[1][0].Text).To(BeEmpty())
		})
	})

	Describe("channel routing", func() {
		It("routes a title tag with duration", func() {
			res := coord.Dispatch(context.Background(), recipients(), "[title:3]Round over\n{player} wins")
			Expect(res.SentToAny).To(BeTrue())

			Expect(steve.Messages).To(BeEmpty())
			Expect(steve.Titles).To(HaveLen(1))
			Expect(steve.Titles[0].Title).To(Equal("Round over"))
			Expect(steve.Titles[0].Subtitle).To(Equal("Steve wins"))
			Expect(alex.Titles[0].Subtitle).To(Equal("Alex wins"))
		})

		It("routes an action bar tag and flattens markup", func() {
			coord.Dispatch(context.Background(), recipients(), `[action_bar]<sc>low</sc> health`)
			Expect(steve.ActionBars).To(Equal([]string{"ʟᴏᴡ health"}))
		})

		It("routes a boss bar tag and drains it", func() {
			factory := pc.BossBars.(*host.FakeBossBarFactory)

			res := coord.Dispatch(context.Background(), recipients(), "[bossbar:1:RED]Meteor incoming")
			Expect(res.SentToAny).To(BeTrue())

			Expect(factory.Bars).To(HaveLen(1))
			bar := factory.Bars[0]
			Expect(bar.Color).To(Equal("RED"))
			Expect(bar.Viewers).To(HaveLen(2))
			Expect(bar.Removed).To(BeTrue())
			Expect(bar.Progress).NotTo(BeEmpty())
		})

		It("routes a json tag after validation", func() {
			res := coord.Dispatch(context.Background(), recipients(), `[json]{"text":"hi {player}"}`)
			Expect(res.SentToAny).To(BeTrue())
			Expect(steve.RawSends).To(HaveLen(1))
			Expect(string(steve.RawSends[0])).To(ContainSubstring("hi Steve"))
		})

		It("falls back to chat for unknown tags", func() {
			coord.Dispatch(context.Background(), recipients(), "[mystery]hello")
			Expect(steve.Messages).To(HaveLen(1))
		})
	})

	Describe("webhook delivery", func() {
		var (
			srv   *httptest.Server
			calls int32
			body  atomic.Value
		)

		BeforeEach(func() {
			calls = 0
			srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				raw, _ := io.ReadAll(r.Body)
				body.Store(raw)
				w.WriteHeader(http.StatusOK)
			}))
			pc.Config.Webhook.Endpoints = map[string]string{"default": srv.URL}
			pc.HTTPClient = http.DefaultClient
		})

		AfterEach(func() {
			srv.Close()
		})

		It("posts stripped content without recipients", func() {
			res := coord.Dispatch(context.Background(), nil, "[webhook]&cServer restarting")
			Expect(res.SentToAny).To(BeTrue())
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(1)))
			Expect(string(body.Load().([]byte))).To(ContainSubstring("Server restarting"))
		})

		It("reports failure for unconfigured paths", func() {
			res := coord.Dispatch(context.Background(), nil, "[webhook:missing]Hi")
			Expect(res.SentToAny).To(BeFalse())
			Expect(atomic.LoadInt32(&calls)).To(BeZero())
		})
	})

	Describe("runtime placeholder rules", func() {
		It("applies rules registered after construction", func() {
			pc.Placeholders.SetPrefix("&7[srv]&r ")
			pc.Placeholders.Load("{online}", func(host.Recipient) string { return "17" })

			coord.Dispatch(context.Background(), recipients(), "{prefix}{online} players online")
			Expect(steve.Messages[0][0].Text).To(Equal("&7[srv]&r 17 players online"))
		})
	})
})
