// Package diag собирает диагностики прогона соответствия: расхождения битов,
// кривые строки векторов, ошибки ввода-вывода. Фазы проверки пишут через
// Reporter, вывод читает Bag целиком.
package diag
