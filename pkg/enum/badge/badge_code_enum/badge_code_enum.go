// Package badge_code_enum 徽章编码
// 与 badge 字典表的种子数据一一对应
package badge_code_enum

const (
	FIRST_FRIEND        = "first_friend"        // 第一位书友
	SOCIAL_CIRCLE       = "social_circle"       // 书友达到 5 位
	FIRST_BOOK_FINISHED = "first_book_finished" // 第一次读完共读书目
	READING_STREAK_5    = "reading_streak_5"    // 读完 5 次共读
)
