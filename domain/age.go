package domain

import "time"

const MaxAge = 150

// AgeOn returns the completed years between dob and today.
func AgeOn(dob, today Date) int {
	b, t := dob.Time(), today.Time()
	age := t.Year() - b.Year()
	if t.Month() < b.Month() || (t.Month() == b.Month() && t.Day() < b.Day()) {
		age--
	}
	return age
}

// DateOfBirthForAge estimates a birth date as today minus age years. A Feb 29
// that does not exist in the target year becomes Feb 28, so AgeOn of the
// result is always age.
func DateOfBirthForAge(age int, today Date) Date {
	t := today.Time()
	year, month, day := t.Year()-age, t.Month(), t.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return DateOf(year, month, day)
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
