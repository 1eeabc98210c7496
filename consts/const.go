package consts

import "fmt"

// Copies of a rank in one deck.
const (
	MaxOrdinary = 4
	MaxJoker    = 1
)

// MnemonicSorted lists ratel poker keys from the strongest to the weakest.
var MnemonicSorted = []int{15, 14, 2, 1, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3}

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

// Is reports whether target carries the same code, so detailed errors
// built with With still match their sentinel.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// With returns a copy of e with a detail appended to its message.
func (e Error) With(format string, args ...interface{}) Error {
	return Error{Code: e.Code, Msg: e.Msg + fmt.Sprintf(format, args...)}
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsPokersFacesInvalid = NewErr(1, "Pokers faces invalid. ")
	ErrorsInvalidCount       = NewErr(2, "Invalid card count. ")
	ErrorsUnrecognizedShape  = NewErr(3, "Unrecognized shape. ")
	ErrorsInsufficientCards  = NewErr(4, "Insufficient cards. ")
	ErrorsIncomparablePlays  = NewErr(5, "Incomparable plays. ")
	ErrorsUnknownPokerAlias  = NewErr(6, "Unknown poker alias. ")
)
