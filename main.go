package main

import (
	"go.uber.org/zap"

	"github.com/cppla/aaquestions/config"
	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/repositories"
	"github.com/cppla/aaquestions/store"
	"github.com/cppla/aaquestions/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg.Log); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := config.InitDatabase(cfg.Database, cfg.Log.Level, utils.SQLWriter(), models.All()...)
	if err != nil {
		utils.Sugar.Fatalf("database init failed: %v", err)
	}
	utils.Logger.Info("database ready", zap.String("driver", cfg.Database.Driver))

	repos := repositories.NewRepositories(store.New(db))
	if err := report(repos, cfg.Report.Top); err != nil {
		utils.Sugar.Fatalf("report failed: %v", err)
	}
}

// report logs the top questions by followers and by likes, with the average
// karma of each author.
func report(repos *repositories.Repositories, top int) error {
	followed, err := repos.Questions.MostFollowed(top)
	if err != nil {
		return err
	}
	for i, rq := range followed {
		utils.Logger.Info("most followed",
			zap.Int("rank", i+1),
			zap.Uint("question_id", rq.ID),
			zap.String("title", rq.Title),
			zap.Int64("followers", rq.Count),
		)
	}

	liked, err := repos.Questions.MostLiked(top)
	if err != nil {
		return err
	}
	for i, rq := range liked {
		fields := []zap.Field{
			zap.Int("rank", i+1),
			zap.Uint("question_id", rq.ID),
			zap.String("title", rq.Title),
			zap.Int64("likes", rq.Count),
		}
		author, err := repos.Questions.Author(&rq.Question)
		if err != nil {
			return err
		}
		if author != nil {
			karma, err := repos.Users.AverageKarma(author)
			if err != nil {
				return err
			}
			fields = append(fields,
				zap.String("author", author.FName+" "+author.LName),
				zap.Float64("author_karma", karma),
			)
		}
		utils.Logger.Info("most liked", fields...)
	}
	return nil
}
