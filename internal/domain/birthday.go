package domain

import "time"

// Окно дней рождения: диапазон дней года [StartDay, EndDay] включительно.
// Если окно пересекает границу года, EndDay < StartDay и правило
// попадания становится дизъюнктивным (хвост декабря ИЛИ начало января).
type Window struct {
	StartDay int
	EndDay   int
}

// DayOfYear — порядковый номер даты в её году (1..366).
func DayOfYear(t time.Time) int { return t.YearDay() }

// BirthdayWindow строит окно из «сегодня» и горизонта в днях.
// dayGap = 0 даёт однодневное окно (StartDay == EndDay).
// Сравнение всегда по номеру дня в году: 29 февраля в високосный год
// сдвигает последующие дни на единицу — это осознанное приближение,
// поправка на реальный год записи не делается.
func BirthdayWindow(today time.Time, dayGap int) Window {
	if dayGap < 0 {
		dayGap = 0
	}
	return Window{
		StartDay: today.YearDay(),
		EndDay:   today.AddDate(0, 0, dayGap).YearDay(),
	}
}

// Wraps сообщает, пересекает ли окно границу года
func (w Window) Wraps() bool { return w.EndDay < w.StartDay }

// Contains проверяет попадание дня года в окно
func (w Window) Contains(doy int) bool {
	if w.Wraps() {
		return doy >= w.StartDay || doy <= w.EndDay
	}
	return doy >= w.StartDay && doy <= w.EndDay
}
