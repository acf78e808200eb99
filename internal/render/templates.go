package render

// classicTemplate is the ledger layout: bordered table, payment-advice strip
// with a tear-off line. Mirrors the offscreen capture markup the preview and
// the PDF both use.
const classicTemplate = `<div style="font-family: Arial, sans-serif; width: 100%; margin: 0; padding: 10px; background: white; color: #333; box-sizing: border-box;">
  <div style="position: relative; margin-bottom: 30px;">
    <div style="display: flex; justify-content: flex-end; align-items: flex-start; margin-bottom: 20px;">
      <div>{{if .LogoURI}}<img src="{{.LogoURI}}" style="width: 100px; height: 100px; object-fit: contain; border-radius: 50%;" />{{end}}</div>
    </div>
    <div style="display: flex; justify-content: space-between; align-items: flex-start;">
      <div style="flex: 1;">
        <div style="font-size: 32px; font-weight: bold; margin-bottom: 8px; color: #000; letter-spacing: 1px;">{{.TypeLabel}}</div>
        <div style="font-size: 18px; font-weight: 500; color: #000; margin-bottom: 8px;">{{.SenderName}}</div>
        <div style="font-size: 12px; color: #333; line-height: 1.3; white-space: pre-line;">{{range $i, $l := .SenderLines}}{{if $i}}
{{end}}{{$l}}{{end}}</div>
      </div>
      <div style="text-align: right; flex: 1;">
        <div style="text-align: left; margin-top: 10px;">
          <div style="font-size: 12px; margin-bottom: 4px; color: #666;">Invoice Date</div>
          <div style="font-size: 14px; font-weight: 600; color: #000; margin-bottom: 20px;">{{.DateText}}</div>
          <div style="font-size: 12px; margin-bottom: 4px; color: #666;">Invoice Number</div>
          <div style="font-size: 14px; font-weight: 600; color: #000; margin-bottom: 20px;">{{.Number}}</div>
          <div style="font-size: 12px; margin-bottom: 4px; color: #666;">Payment Terms</div>
          <div style="font-size: 14px; font-weight: 600; color: #000; margin-bottom: 20px;">{{.TermsText}}</div>
          <div style="font-size: 12px; margin-bottom: 4px; color: #666;">Due Date</div>
          <div style="font-size: 14px; font-weight: 600; color: #000;">{{.DueDateText}}</div>
        </div>
      </div>
    </div>
  </div>
  <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px; border: 1px solid #d1d5db; table-layout: fixed;">
    <thead>
      <tr style="background: #f8f9fa; color: #000;">
        <th style="padding: 8px; text-align: left; font-weight: bold; font-size: 14px; border: 1px solid #d1d5db; width: 50%;">Description</th>
        <th style="padding: 8px; text-align: right; font-weight: bold; font-size: 14px; border: 1px solid #d1d5db; width: 20%;">Unit Price</th>
        <th style="padding: 8px; text-align: center; font-weight: bold; font-size: 14px; border: 1px solid #d1d5db; width: 15%;">Quantity</th>
        <th style="padding: 8px; text-align: right; font-weight: bold; font-size: 14px; border: 1px solid #d1d5db; width: 15%;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr style="border-bottom: 1px solid #e5e7eb; background: white;">
        <td style="padding: 8px; font-size: 14px; color: #111827; border: 1px solid #d1d5db; vertical-align: top;">{{.Name}}</td>
        <td style="padding: 8px; text-align: right; font-size: 14px; color: #111827; border: 1px solid #d1d5db; vertical-align: top;">{{.UnitPrice}}</td>
        <td style="padding: 8px; text-align: center; font-size: 14px; color: #111827; border: 1px solid #d1d5db; vertical-align: top;">{{.Quantity}}</td>
        <td style="padding: 8px; text-align: right; font-size: 14px; font-weight: bold; color: #111827; border: 1px solid #d1d5db; vertical-align: top;">{{.Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <div style="display: flex; justify-content: flex-end; align-items: flex-end; margin-bottom: 30px;">
    <div style="text-align: right; min-width: 200px;">
      <div style="font-size: 14px; margin-bottom: 8px; display: flex; justify-content: space-between;">
        <span style="color: #111827; font-weight: 600;">Subtotal</span>
        <span style="color: #111827; font-weight: bold;">{{.Subtotal}}</span>
      </div>
      {{if .ShowDiscount}}<div style="font-size: 14px; margin-bottom: 8px; display: flex; justify-content: space-between;">
        <span style="color: #111827; font-weight: 600;">Discount</span>
        <span style="color: #111827; font-weight: bold;">-{{.Discount}}</span>
      </div>{{end}}
      {{if .ShowShipping}}<div style="font-size: 14px; margin-bottom: 8px; display: flex; justify-content: space-between;">
        <span style="color: #111827; font-weight: 600;">Shipping</span>
        <span style="color: #111827; font-weight: bold;">{{.Shipping}}</span>
      </div>{{end}}
      {{if .ShowTax}}<div style="font-size: 14px; margin-bottom: 8px; display: flex; justify-content: space-between;">
        <span style="color: #111827; font-weight: 600;">{{.TaxLabel}}</span>
        <span style="color: #111827; font-weight: bold;">{{.TaxAmount}}</span>
      </div>{{end}}
      <div style="font-size: 14px; margin-bottom: 8px; display: flex; justify-content: space-between; border-top: 1px solid #d1d5db; padding-top: 8px;">
        <span style="color: #111827; font-weight: bold;">TOTAL</span>
        <span style="color: #111827; font-weight: bold;">{{.Total}}</span>
      </div>
    </div>
  </div>
  <div style="border-top: 2px dashed #ccc; padding-top: 20px; margin-top: 20px;">
    <div style="font-size: 16px; font-weight: bold; color: #000; margin-bottom: 15px;">PAYMENT ADVICE</div>
    <div style="display: flex; justify-content: space-between; margin-bottom: 20px;">
      <div style="flex: 1;">
        <div style="font-size: 12px; margin-bottom: 4px; color: #666;">To:</div>
        <div style="font-size: 12px; color: #333; line-height: 1.3; white-space: pre-line;">{{range $i, $l := .RecipientLines}}{{if $i}}
{{end}}{{$l}}{{end}}</div>
      </div>
      <div style="flex: 1; text-align: right;">
        <div style="font-size: 12px; color: #333; white-space: pre-line;">{{range $i, $l := .NoteLines}}{{if $i}}
{{end}}{{$l}}{{end}}</div>
      </div>
    </div>
    <div style="margin-bottom: 20px;">
      <div style="font-size: 12px; margin-bottom: 4px; color: #666;">Amount Enclosed: <span style="font-weight: bold; color: #000;">{{.AmountEnclosed}}</span></div>
      <div style="border-bottom: 1px solid #333; height: 20px; margin-bottom: 4px;"></div>
      <div style="font-size: 10px; color: #666;">Enter the amount you are paying above</div>
    </div>
    <div style="font-size: 10px; color: #666; text-align: center;">Registered Office: {{.RegisteredOffice}}</div>
  </div>
</div>
`

// modernTemplate is the card layout: same data, softer skin, thank-you
// footer instead of the tear-off strip.
const modernTemplate = `<div style="font-family: 'Segoe UI', Tahoma, sans-serif; width: 100%; margin: 0; padding: 24px; background: white; color: #1f2937; box-sizing: border-box;">
  <div style="background: #f8fafc; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
    <div style="display: flex; justify-content: space-between; align-items: flex-start;">
      <div>
        <div style="font-size: 28px; font-weight: 700; color: #0f172a; letter-spacing: 1px;">{{.TypeLabel}}</div>
        <div style="font-size: 16px; font-weight: 600; color: #0f172a; margin-top: 8px;">{{.SenderName}}</div>
        <div style="font-size: 12px; color: #475569; line-height: 1.4; white-space: pre-line; margin-top: 4px;">{{range $i, $l := .SenderLines}}{{if $i}}
{{end}}{{$l}}{{end}}</div>
      </div>
      <div style="text-align: right;">
        {{if .LogoURI}}<img src="{{.LogoURI}}" style="width: 80px; height: 80px; object-fit: contain; border-radius: 50%; margin-bottom: 12px;" />{{end}}
        <div style="font-size: 12px; color: #64748b;">Invoice Date</div>
        <div style="font-size: 14px; font-weight: 600; color: #0f172a; margin-bottom: 8px;">{{.DateText}}</div>
        <div style="font-size: 12px; color: #64748b;">Invoice Number</div>
        <div style="font-size: 14px; font-weight: 600; color: #0f172a; margin-bottom: 8px;">{{.Number}}</div>
        <div style="font-size: 12px; color: #64748b;">Payment Terms</div>
        <div style="font-size: 14px; font-weight: 600; color: #0f172a; margin-bottom: 8px;">{{.TermsText}}</div>
        <div style="font-size: 12px; color: #64748b;">Due Date</div>
        <div style="font-size: 14px; font-weight: 600; color: #0f172a;">{{.DueDateText}}</div>
      </div>
    </div>
  </div>
  <table style="width: 100%; border-collapse: collapse; margin-bottom: 24px;">
    <thead>
      <tr style="border-bottom: 2px solid #e2e8f0;">
        <th style="padding: 10px 8px; text-align: left; font-size: 13px; color: #64748b; width: 50%;">Description</th>
        <th style="padding: 10px 8px; text-align: right; font-size: 13px; color: #64748b; width: 20%;">Unit Price</th>
        <th style="padding: 10px 8px; text-align: center; font-size: 13px; color: #64748b; width: 15%;">Quantity</th>
        <th style="padding: 10px 8px; text-align: right; font-size: 13px; color: #64748b; width: 15%;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr style="border-bottom: 1px solid #f1f5f9;">
        <td style="padding: 10px 8px; font-size: 14px; color: #0f172a;">{{.Name}}</td>
        <td style="padding: 10px 8px; text-align: right; font-size: 14px; color: #0f172a;">{{.UnitPrice}}</td>
        <td style="padding: 10px 8px; text-align: center; font-size: 14px; color: #0f172a;">{{.Quantity}}</td>
        <td style="padding: 10px 8px; text-align: right; font-size: 14px; font-weight: 600; color: #0f172a;">{{.Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <div style="display: flex; justify-content: flex-end; margin-bottom: 24px;">
    <div style="min-width: 220px; background: #f8fafc; border-radius: 12px; padding: 16px;">
      <div style="display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 8px;">
        <span style="color: #64748b;">Subtotal</span><span style="font-weight: 600;">{{.Subtotal}}</span>
      </div>
      {{if .ShowDiscount}}<div style="display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 8px;">
        <span style="color: #64748b;">Discount</span><span style="font-weight: 600;">-{{.Discount}}</span>
      </div>{{end}}
      {{if .ShowShipping}}<div style="display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 8px;">
        <span style="color: #64748b;">Shipping</span><span style="font-weight: 600;">{{.Shipping}}</span>
      </div>{{end}}
      {{if .ShowTax}}<div style="display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 8px;">
        <span style="color: #64748b;">{{.TaxLabel}}</span><span style="font-weight: 600;">{{.TaxAmount}}</span>
      </div>{{end}}
      <div style="display: flex; justify-content: space-between; font-size: 16px; border-top: 1px solid #e2e8f0; padding-top: 8px;">
        <span style="font-weight: 700;">TOTAL</span><span style="font-weight: 700;">{{.Total}}</span>
      </div>
    </div>
  </div>
  <div style="display: flex; justify-content: space-between; margin-bottom: 24px;">
    <div style="flex: 1;">
      <div style="font-size: 12px; color: #64748b; margin-bottom: 4px;">To:</div>
      <div style="font-size: 12px; color: #334155; line-height: 1.4; white-space: pre-line;">{{range $i, $l := .RecipientLines}}{{if $i}}
{{end}}{{$l}}{{end}}</div>
    </div>
    <div style="flex: 1; text-align: right;">
      <div style="font-size: 12px; color: #334155; white-space: pre-line;">{{range $i, $l := .NoteLines}}{{if $i}}
{{end}}{{$l}}{{end}}</div>
    </div>
  </div>
  <div style="font-size: 12px; color: #64748b; margin-bottom: 16px;">Amount Enclosed: <span style="font-weight: 600; color: #0f172a;">{{.AmountEnclosed}}</span></div>
  <div style="font-size: 10px; color: #94a3b8; text-align: center;">Registered Office: {{.RegisteredOffice}}</div>
  <div style="font-size: 13px; color: #0f172a; text-align: center; margin-top: 16px; font-weight: 600;">{{.FooterLine}}</div>
</div>
`
