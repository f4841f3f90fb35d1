package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gomahjong/common/config"
	"gomahjong/common/log"
	"gomahjong/runtime/game/engines/mahjong"
	"gomahjong/scorer/app"
)

var configFile string

type evaluateOptions struct {
	file       string
	tiles      string
	seat       string
	prevailing string
	bonus      string
	selfDrawn  bool
	concealed  bool
	asJSON     bool
}

var evalFlags evaluateOptions

var rootCmd = &cobra.Command{
	Use:   "scorer",
	Short: "港式麻将计分",
	Long:  `港式麻将计分：判定 14 张手牌的牌型并给出分项得分`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configFile); err != nil {
			return fmt.Errorf("文件配置发生错误：%w", err)
		}
		cfg := config.Get()
		log.InitLog(cfg.AppName, cfg.Log.Level)
		log.Debug("配置文件: %+v", cfg)

		if configFile != "" {
			err := config.Watch(configFile,
				func(c config.ScorerConfiguration) {
					log.SetLevel(c.Log.Level)
					log.Info("配置已重新加载，日志级别: %s", c.Log.Level)
				},
				func(err error) { log.Warn("配置重新加载失败: %v", err) },
			)
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "评估手牌",
	Long: `评估手牌，输入二选一：
  --file   JSON 请求（单个对象、数组或 JSON lines），"-" 表示标准输入
  --tiles  逗号分隔的 14 个牌名，例如 dot_1,dot_2,...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := buildRequests(cmd.InOrStdin())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, config.Get(), reqs, cmd.OutOrStdout(), evalFlags.asJSON)
	},
}

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "列出所有牌名",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range mahjong.AllTiles() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", t.Name(), t.Suit())
		}
	},
}

func buildRequests(stdin io.Reader) ([]app.Request, error) {
	defaults := config.Get().Defaults

	switch {
	case evalFlags.file != "" && evalFlags.tiles != "":
		return nil, fmt.Errorf("--file 与 --tiles 只能二选一")
	case evalFlags.file != "":
		var data []byte
		var err error
		if evalFlags.file == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(evalFlags.file)
		}
		if err != nil {
			return nil, fmt.Errorf("读取输入失败: %w", err)
		}
		return app.DecodeRequests(data, defaults)
	case evalFlags.tiles != "":
		hand, err := mahjong.ParseHand(app.SplitNames(evalFlags.tiles)...)
		if err != nil {
			return nil, err
		}
		var bonus []mahjong.Tile
		for _, n := range app.SplitNames(evalFlags.bonus) {
			t, err := mahjong.ParseTile(n)
			if err != nil {
				return nil, err
			}
			bonus = append(bonus, t)
		}
		ctx, err := app.NewContext(
			orDefault(evalFlags.seat, defaults.SeatWind),
			orDefault(evalFlags.prevailing, defaults.PrevailingWind),
			bonus, evalFlags.selfDrawn, evalFlags.concealed,
		)
		if err != nil {
			return nil, err
		}
		return []app.Request{{ID: "cli", Hand: hand, Ctx: ctx}}, nil
	default:
		return nil, fmt.Errorf("需要 --file 或 --tiles")
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")

	f := evaluateCmd.Flags()
	f.StringVar(&evalFlags.file, "file", "", "JSON request file, - for stdin")
	f.StringVar(&evalFlags.tiles, "tiles", "", "comma separated tile names")
	f.StringVar(&evalFlags.seat, "seat", "", "seat wind (east|south|west|north)")
	f.StringVar(&evalFlags.prevailing, "prevailing", "", "prevailing wind (east|south|west|north)")
	f.StringVar(&evalFlags.bonus, "bonus", "", "comma separated flower/season tiles")
	f.BoolVar(&evalFlags.selfDrawn, "self-drawn", false, "winning tile was self drawn")
	f.BoolVar(&evalFlags.concealed, "concealed", false, "hand is fully concealed")
	f.BoolVar(&evalFlags.asJSON, "json", false, "print results as json")

	rootCmd.AddCommand(evaluateCmd, tilesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
