// Package features отвечает за премиум-функции инстанса: список включенных
// функций собирается из конфигурации окружения, YAML-файла и явных
// переопределений.
package features
