package dashboard

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketops/missionctl/internal/board"
	"github.com/marketops/missionctl/internal/feed"
	"github.com/marketops/missionctl/internal/models"
	"github.com/marketops/missionctl/internal/projects"
	"github.com/marketops/missionctl/internal/schedule"
	"github.com/marketops/missionctl/internal/timefmt"
	"github.com/marketops/missionctl/internal/vault"
)

func registerRoutes(router *gin.Engine, d deps) {
	staticFS, err := fs.Sub(assetsFS, "assets")
	if err == nil {
		router.StaticFS("/static", http.FS(staticFS))
	}

	// The unauthorized page stays reachable without a session.
	router.GET("/unauthorized", handleUnauthorized)

	pages := router.Group("/")
	pages.Use(requireSession(d.auth, d.log))
	pages.GET("/", handleFeed(d))
	pages.GET("/tasks", handleTasks(d))
	pages.GET("/calendar", handleCalendar(d))
	pages.GET("/docs", handleDocs(d))
	pages.GET("/projects", handleProjects(d))
	pages.GET("/team", handleTeam)

	registerTaskAPI(router, d)
}

// briefingView is one rendered feed card.
type briefingView struct {
	Date    string
	Summary string
	Tickers []string
	Heat    []feed.HeatEntry
	Picks   []feed.Pick
}

// teaserView is one open-task row on the feed sidebar.
type teaserView struct {
	Title     string
	Status    string
	Priority  string
	WaitingOn string
	Ago       string
}

func handleFeed(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		recs, err := RecentBriefings(d.db, now)
		if err != nil {
			d.log.Error("feed briefings query failed", zap.Error(err))
		}
		tasks, err := OpenTasks(d.db)
		if err != nil {
			d.log.Error("feed tasks query failed", zap.Error(err))
		}

		briefings := make([]briefingView, 0, len(recs))
		for _, rec := range recs {
			briefings = append(briefings, briefingView{
				Date:    timefmt.ISODate(rec.Date),
				Summary: rec.Summary,
				Tickers: feed.Tickers(rec.Tickers),
				Heat:    feed.NormalizeHeatMap(rec.HeatMap),
				Picks:   feed.NormalizePicks(rec.NewPicks),
			})
		}

		var teaser []teaserView
		for _, task := range feed.Teaser(tasks, 3) {
			row := teaserView{
				Title:    task.Title,
				Status:   task.Status,
				Priority: task.Priority,
				Ago:      timefmt.Ago(task.CreatedAt, now),
			}
			if task.Status == models.StatusBlocked && task.WaitingOn != nil {
				row.WaitingOn = *task.WaitingOn
			}
			teaser = append(teaser, row)
		}

		c.HTML(http.StatusOK, "feed.html", gin.H{
			"Active":    "feed",
			"Briefings": briefings,
			"Teaser":    teaser,
		})
	}
}

func handleTasks(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := AllTasks(d.db)
		if err != nil {
			d.log.Error("tasks query failed", zap.Error(err))
		}
		activity, err := RecentActivity(d.db)
		if err != nil {
			d.log.Error("activity query failed", zap.Error(err))
		}

		cols := board.Partition(tasks)
		done := len(cols.Done)

		now := time.Now()
		type activityView struct {
			Summary  string
			Category string
			Ago      string
		}
		var events []activityView
		for _, entry := range activity {
			row := activityView{Summary: entry.Summary, Ago: timefmt.Ago(entry.CreatedAt, now)}
			if entry.Category != nil {
				row.Category = *entry.Category
			}
			events = append(events, row)
		}

		c.HTML(http.StatusOK, "tasks.html", gin.H{
			"Active":      "tasks",
			"Columns":     cols,
			"PercentDone": board.PercentDone(done, len(tasks)),
			"Total":       len(tasks),
			"DoneCount":   done,
			"Activity":    events,
			"Tasks":       tasks,
		})
	}
}

func handleCalendar(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		routines, err := ScheduledRoutines(d.db)
		if err != nil {
			d.log.Error("routines query failed", zap.Error(err))
		}
		view := schedule.Partition(routines, time.Now())

		c.HTML(http.StatusOK, "calendar.html", gin.H{
			"Active": "calendar",
			"View":   view,
		})
	}
}

func handleDocs(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := AllDocuments(d.db)
		if err != nil {
			d.log.Error("documents query failed", zap.Error(err))
		}

		category := c.DefaultQuery("category", "All")
		search := c.Query("q")
		filtered := vault.Filter(docs, category, search)
		selected := vault.Find(filtered, c.Query("doc"))

		type detailView struct {
			Title    string
			Filename string
			Content  string
			Words    int
			Updated  string
		}
		var detail *detailView
		if selected != nil {
			// updated_at falls back to created_at for rows the agents
			// wrote once and never touched again.
			stamp := selected.UpdatedAt
			if stamp.IsZero() {
				stamp = selected.CreatedAt
			}
			detail = &detailView{
				Title:    selected.Title,
				Filename: selected.Filename,
				Content:  selected.Content,
				Words:    selected.WordCount,
				Updated:  timefmt.Date(stamp),
			}
		}

		now := time.Now()
		type docView struct {
			ID       string
			Title    string
			Filename string
			Category string
			Words    int
			Updated  string
			Selected bool
		}
		rows := make([]docView, 0, len(filtered))
		for _, doc := range filtered {
			rows = append(rows, docView{
				ID:       doc.ID,
				Title:    doc.Title,
				Filename: doc.Filename,
				Category: doc.Category,
				Words:    doc.WordCount,
				Updated:  timefmt.Ago(doc.UpdatedAt, now),
				Selected: selected != nil && doc.ID == selected.ID,
			})
		}

		c.HTML(http.StatusOK, "docs.html", gin.H{
			"Active":     "docs",
			"Categories": vault.Categories,
			"Category":   category,
			"Search":     search,
			"Docs":       rows,
			"Selected":   detail,
		})
	}
}

func handleProjects(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := AllProjects(d.db)
		if err != nil {
			d.log.Error("projects query failed", zap.Error(err))
		}

		now := time.Now()
		summary := projects.Summarize(list, now)

		type projectView struct {
			Name        string
			Description string
			Status      string
			Priority    string
			Progress    int
			Launch      string
			Soon        bool
			RepoURL     string
			Color       string
		}
		cards := make([]projectView, 0, len(list))
		for _, p := range list {
			card := projectView{
				Name:     p.Name,
				Status:   p.Status,
				Priority: p.Priority,
				Progress: projects.ClampProgress(p.Progress),
				Soon:     projects.LaunchingSoon(p.LaunchDate, now),
			}
			if p.Description != nil {
				card.Description = *p.Description
			}
			if p.LaunchDate != nil {
				card.Launch = timefmt.Date(*p.LaunchDate)
			}
			if p.RepoURL != nil {
				card.RepoURL = *p.RepoURL
			}
			if p.Color != nil {
				card.Color = *p.Color
			}
			cards = append(cards, card)
		}

		c.HTML(http.StatusOK, "projects.html", gin.H{
			"Active":   "projects",
			"Summary":  summary,
			"Projects": cards,
		})
	}
}

// teamMember is a static roster entry; the team page has no store behind it.
type teamMember struct {
	Name  string
	Role  string
	Blurb string
}

var roster = []teamMember{
	{Name: "Samantha", Role: "Chief of Staff", Blurb: "Coordinates the crew, owns the morning briefing and keeps the board honest."},
	{Name: "Scout", Role: "Market Research", Blurb: "Scans filings, news and tickers; feeds the heat map."},
	{Name: "Quill", Role: "Writer", Blurb: "Drafts the daily summaries and vault documents."},
	{Name: "Pixel", Role: "Design", Blurb: "Keeps the dashboards readable."},
	{Name: "Echo", Role: "Comms", Blurb: "Summarizes activity and flags anything waiting on a human."},
	{Name: "Rex", Role: "Lead Engineer", Blurb: "Builds and maintains the automations behind every routine."},
}

func handleTeam(c *gin.Context) {
	c.HTML(http.StatusOK, "team.html", gin.H{
		"Active": "team",
		"Roster": roster,
	})
}

func handleUnauthorized(c *gin.Context) {
	c.HTML(http.StatusOK, "unauthorized.html", gin.H{})
}
