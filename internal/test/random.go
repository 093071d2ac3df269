package test

import (
	"math/rand"
	"sync"
	"time"
)

// Form input on the site is mostly Russian, so generated text mixes scripts.
var textAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 " +
	"абвгдеёжзийклмнопрстуфхцчшщъыьэюяАБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ" +
	".,!?\"'<>&\\/")

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomText returns pseudo-random text of minLen..maxLen runes that is never
// blank: the first rune is always a letter.
func RandomText(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]rune, length)
	buf[0] = textAlphabet[randomIntn(26)]
	for i := 1; i < length; i++ {
		buf[i] = textAlphabet[randomIntn(len(textAlphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
