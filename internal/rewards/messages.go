package rewards

import (
	"github.com/abhisek/mamchoi/internal/randutil"
)

// MessageKind tells a congratulation from an encouragement.
type MessageKind string

const (
	MessageCongrats  MessageKind = "congrats"
	MessageEncourage MessageKind = "encourage"
)

// CongratsThreshold is the share of correct answers that earns a
// congratulation instead of an encouragement.
const CongratsThreshold = 0.7

const (
	encourageTryAgain   = "Bé hãy cố gắng thêm ở lần sau nhé!"
	endMessageIconCount = 3
)

var (
	congratsMessages = []string{
		"Xuất sắc! Bé thật là siêu!",
		"Tuyệt vời! Bé đã làm rất tốt!",
		"Giỏi quá! Bé là một thiên tài toán học!",
		"Hoàn thành xuất sắc! Tiếp tục phát huy nhé!",
		"Chúc mừng bé đã chinh phục thử thách!",
	}

	congratsIcons     = []string{"🎉", "🥳", "🌟", "🏆", "🥇", "🎈", "✨", "🤩", "💯"}
	positiveEmojis    = []string{"🥳", "🤩", "🎉", "👍", "🌟", "💖", "💫", "🎈", "💯", "✨", "✔️", "🏆", "🥇", "🏅"}
	encouragingEmojis = []string{"🤔", "🧐", "💡", "💪", "🌱", "➡️", "🚀", "👀", "✏️", "🧠"}

	positiveFeedbacks    = []string{"TUYỆT VỜI!", "GIỎI QUÁ!", "XUẤT SẮC!", "CHUẨN LUÔN!", "QUÁ ĐỈNH!", "BÉ LÀM TỐT LẮM!", "ĐÚNG RỒI ĐÓ BÉ!"}
	encouragingFeedbacks = []string{"BÉ HÃY SUY NGHĨ KỸ HƠN!", "CỐ LÊN NÀO BÉ!", "THỬ LẠI NHÉ!", "SUÝT ĐÚNG RỒI!", "ĐỪNG NẢN LÒNG, BÉ CỐ GẮNG NHÉ!", "SAI MỘT CHÚT THÔI!"}
)

// EndMessage is shown when a round is over.
type EndMessage struct {
	Kind  MessageKind
	Text  string
	Icons []string
}

// EndOfRound picks the closing message for score out of total.
func EndOfRound(r *randutil.Rand, score, total int) EndMessage {
	if total > 0 && float64(score) >= float64(total)*CongratsThreshold {
		text, _ := randutil.Pick(r, congratsMessages)
		pool := MergeRecentIcons(positiveEmojis, congratsIcons, 0)
		return EndMessage{
			Kind:  MessageCongrats,
			Text:  text,
			Icons: randutil.Shuffle(r, pool)[:endMessageIconCount],
		}
	}
	return EndMessage{
		Kind:  MessageEncourage,
		Text:  encourageTryAgain,
		Icons: randutil.Shuffle(r, encouragingEmojis)[:endMessageIconCount],
	}
}

// Feedback returns the short phrase shown after an answer.
func Feedback(r *randutil.Rand, correct bool) string {
	list := encouragingFeedbacks
	if correct {
		list = positiveFeedbacks
	}
	s, _ := randutil.Pick(r, list)
	return s
}
