// Package taskstate - клиентский снимок всех задач и производные от него
// отфильтрованные и разбитые на страницы представления.
//
// Store - единственный, кто меняет снимок. Изменения применяются только после
// подтверждения сервером, оптимистичных обновлений нет. При ошибке снимок не
// меняется, а ошибка уходит в Notifier.
//
// Фильтрация и пагинация - чистые функции снимка и состояния представления
// (Apply, Paginate, TotalPages), пересчитываются при каждом вызове View.
package taskstate
