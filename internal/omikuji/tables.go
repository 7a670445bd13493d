package omikuji

import "Omikuji/internal/model"

// DefaultLevel supplies the advice table for levels missing from adviceTable.
const DefaultLevel = model.SmallBlessing

// adviceTable holds the candidate advice phrasings for each level.
var adviceTable = map[model.FortuneLevel][]string{
	model.GreatBlessing: {
		"今日は最高の日です。新しいことにチャレンジしてみましょう。",
		"素晴らしい運気が流れています。積極的に行動しましょう。",
		"幸運が舞い込む絶好のタイミングです。",
		"今日の決断が良い結果をもたらすでしょう。",
	},
	model.MiddleBlessing: {
		"良い運気が続いています。順調に進むでしょう。",
		"努力が実を結ぶ時期です。継続は力なりです。",
		"安定した幸運に恵まれています。",
		"着実に歩みを進めれば良い結果が得られます。",
	},
	model.SmallBlessing: {
		"小さな幸せが見つかるでしょう。",
		"穏やかな運気に包まれています。",
		"ささやかな喜びがあなたを待っています。",
		"日常の中に幸運が隠れています。",
	},
	model.FutureBlessing: {
		"後半に向けて運気が上昇するでしょう。",
		"忍耐強く待てば良いことがあります。",
		"今は準備の時期です。チャンスを待ちましょう。",
		"ゆっくりと良い方向に向かっています。",
	},
	model.Curse: {
		"慎重に行動することが大切です。",
		"今は控えめに過ごしましょう。",
		"注意深く周りを見回してください。",
		"無理をせず、安全第一で過ごしましょう。",
	},
	model.GreatCurse: {
		"今日は特に注意が必要です。慎重に行動してください。",
		"大きな決断は避けて、様子を見ましょう。",
		"困難な時期ですが、必ず明けない夜はありません。",
		"今は静かに過ごし、嵐が過ぎるのを待ちましょう。",
	},
}

// LuckyItems is the pool lucky items are drawn from, independent of level.
var LuckyItems = []string{
	"お守り", "鈴", "招き猫", "四つ葉のクローバー", "馬蹄",
	"水晶", "ペンダント", "指輪", "時計", "財布",
	"鏡", "花", "本", "キーホルダー", "ストラップ",
}

// LuckyColors is the pool lucky colors are drawn from, independent of level.
var LuckyColors = []string{
	"赤", "青", "黄", "緑", "紫", "白", "黒", "金", "銀", "ピンク",
	"オレンジ", "茶色", "水色", "紺色", "灰色",
}

// adviceFor returns the advice candidates for level, falling back to DefaultLevel.
func adviceFor(level model.FortuneLevel) []string {
	if phrases, ok := adviceTable[level]; ok && len(phrases) > 0 {
		return phrases
	}
	return adviceTable[DefaultLevel]
}
